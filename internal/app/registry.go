package app

import (
	"database/sql"

	"go-hrm/internal/attendance"
	"go-hrm/internal/calendar"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/leave"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/notification"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Collaborator ports ---
	mailer := notification.NewMailer(notification.SMTPConfigFromEnv())
	notifier := notification.NewFanout(mailer, outboxRepo)
	calendarPort := calendar.NewGoogleCalendar(calendar.GoogleConfigFromEnv())
	ledger := employee.NewLedger(employeeRepo)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	departmentService := department.NewService(departmentRepo)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, departmentRepo, ledger, calendarPort, notifier)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo, departmentRepo, notifier)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	departmentHandler := department.NewHandler(departmentService)
	leaveHandler := leave.NewHandler(leaveService)
	attendanceHandler := attendance.NewHandler(attendanceService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		department.RegisterRoutes(api, departmentHandler, enforcer)
		leave.RegisterRoutes(api, leaveHandler, enforcer, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer, rdb)
	}

	return nil
}
