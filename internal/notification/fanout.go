package notification

import (
	"context"
	"encoding/json"

	"go-hrm/internal/events"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fanout delivers email through SMTP and realtime events through the
// transactional outbox, where the worker binary ships them to Kafka.
type Fanout struct {
	mailer *Mailer
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewFanout(mailer *Mailer, outbox kafka.OutboxRepository, logger ...*zap.Logger) *Fanout {
	l := zap.L().Named("notification.fanout")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.fanout")
	}
	return &Fanout{mailer: mailer, outbox: outbox, logger: l}
}

func (f *Fanout) Publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return err
	}

	row := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "notification",
		AggregateID:   ev.EmployeeID,
		EventType:     ev.Kind,
		Topic:         events.NotificationTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}

	if err := kafka.ValidateOutboxEvent(row); err != nil {
		return err
	}
	if err := f.outbox.Create(ctx, row); err != nil {
		return err
	}

	f.logger.Debug("notification queued",
		zap.String("employee_id", ev.EmployeeID),
		zap.String("kind", ev.Kind),
	)
	return nil
}

func (f *Fanout) SendEmail(ctx context.Context, to []string, subject, htmlBody string) error {
	return f.mailer.SendEmail(ctx, to, subject, htmlBody)
}
