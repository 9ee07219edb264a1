package calendar

import (
	"context"
	"fmt"
	"os"

	"go-hrm/internal/employee"
	"go-hrm/internal/leave"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const primaryCalendar = "primary"

// Event colors per leave type, matching the Google Calendar palette ids.
var colorByType = map[string]string{
	leave.TypeAnnual:    "10",
	leave.TypePaid:      "10",
	leave.TypeSick:      "11",
	leave.TypeMaternity: "3",
	leave.TypePaternity: "3",
	leave.TypeFamily:    "5",
	leave.TypeTraining:  "7",
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

func GoogleConfigFromEnv() GoogleConfig {
	return GoogleConfig{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
	}
}

// GoogleCalendar mirrors approved leave into each employee's primary
// Google calendar, authenticating with the per-employee OAuth refresh
// token. An employee without a linked calendar yields no-ops.
type GoogleCalendar struct {
	oauth  *oauth2.Config
	logger *zap.Logger
}

var _ leave.CalendarPort = (*GoogleCalendar)(nil)

func NewGoogleCalendar(cfg GoogleConfig, logger ...*zap.Logger) *GoogleCalendar {
	l := zap.L().Named("calendar.google")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.google")
	}
	return &GoogleCalendar{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcalendar.CalendarEventsScope},
		},
		logger: l,
	}
}

// client builds a calendar client for the employee, or nil when the
// employee has no linked calendar.
func (g *GoogleCalendar) client(ctx context.Context, emp *employee.Employee) (*gcalendar.Service, error) {
	if !emp.CalendarLinked() {
		return nil, nil
	}
	ts := g.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: *emp.CalendarRefreshToken})
	return gcalendar.NewService(ctx, option.WithTokenSource(ts))
}

func (g *GoogleCalendar) CreateEvent(ctx context.Context, emp *employee.Employee, l *leave.Leave) (string, error) {
	svc, err := g.client(ctx, emp)
	if err != nil {
		return "", err
	}
	if svc == nil {
		g.logger.Debug("calendar not linked, skipping event create",
			zap.String("employee_id", emp.ID.String()),
		)
		return "", nil
	}

	created, err := svc.Events.Insert(primaryCalendar, g.buildEvent(emp, l)).Context(ctx).Do()
	if err != nil {
		return "", err
	}

	g.logger.Info("calendar event created",
		zap.String("leave_id", l.ID.String()),
		zap.String("event_id", created.Id),
	)
	return created.Id, nil
}

func (g *GoogleCalendar) UpdateEvent(ctx context.Context, emp *employee.Employee, l *leave.Leave) error {
	if l.CalendarEventID == nil {
		return nil
	}
	svc, err := g.client(ctx, emp)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}

	_, err = svc.Events.Update(primaryCalendar, *l.CalendarEventID, g.buildEvent(emp, l)).Context(ctx).Do()
	if err != nil {
		return err
	}

	g.logger.Info("calendar event updated",
		zap.String("leave_id", l.ID.String()),
		zap.String("event_id", *l.CalendarEventID),
	)
	return nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, emp *employee.Employee, l *leave.Leave) error {
	if l.CalendarEventID == nil {
		return nil
	}
	svc, err := g.client(ctx, emp)
	if err != nil {
		return err
	}
	if svc == nil {
		return nil
	}

	if err := svc.Events.Delete(primaryCalendar, *l.CalendarEventID).Context(ctx).Do(); err != nil {
		return err
	}

	g.logger.Info("calendar event deleted",
		zap.String("leave_id", l.ID.String()),
		zap.String("event_id", *l.CalendarEventID),
	)
	return nil
}

// buildEvent shapes the all-day event. The end date is exclusive on the
// Google side, so one day is added to keep a same-day leave visible.
func (g *GoogleCalendar) buildEvent(emp *employee.Employee, l *leave.Leave) *gcalendar.Event {
	ev := &gcalendar.Event{
		Summary:     fmt.Sprintf("Leave - %s", l.LeaveType),
		Description: fmt.Sprintf("%s is on %s leave.", emp.FullName(), l.LeaveType),
		Start:       &gcalendar.EventDateTime{Date: l.StartDate.Format("2006-01-02")},
		End:         &gcalendar.EventDateTime{Date: l.EndDate.AddDate(0, 0, 1).Format("2006-01-02")},
		ExtendedProperties: &gcalendar.EventExtendedProperties{
			Private: map[string]string{"leaveId": l.ID.String()},
		},
	}
	if color, ok := colorByType[l.LeaveType]; ok {
		ev.ColorId = color
	}
	return ev
}
