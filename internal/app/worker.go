package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hrm/internal/attendance"
	"go-hrm/internal/employee"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/messaging/kafka/producer"
	"go-hrm/internal/notification"
	"go-hrm/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Business-day schedules: the reminder runs mid-morning, the absence
// sweep late in the evening.
const (
	reminderSchedule = "0 10 * * 1-5"
	absenceSchedule  = "0 23 * * 1-5"
)

// RunWorker hosts the scheduled sweeps and the outbox publisher loop.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	mailer := notification.NewMailer(notification.SMTPConfigFromEnv())
	notifier := notification.NewFanout(mailer, outboxRepo)

	sweeper := attendance.NewSweeper(attendanceRepo, employeeRepo, notifier)
	reminder := attendance.NewReminder(attendanceRepo, employeeRepo, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(reminderSchedule, func() {
		if _, err := reminder.RemindMissingCheckIns(ctx, time.Now()); err != nil {
			logger.Error("reminder run failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}
	if _, err := scheduler.AddFunc(absenceSchedule, func() {
		if _, err := sweeper.MarkAbsences(ctx, time.Now()); err != nil {
			logger.Error("absence sweep run failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}
	scheduler.Start()
	logger.Info("worker schedules registered",
		zap.String("reminder", reminderSchedule),
		zap.String("absence_sweep", absenceSchedule),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	stopCtx := scheduler.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(10 * time.Second):
		logger.Warn("scheduler jobs did not finish in time")
	}

	return nil
}
