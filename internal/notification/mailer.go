package notification

import (
	"context"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPConfigFromEnv reads the mail settings the deployment provides. An
// empty username disables the mailer rather than failing startup, matching
// how the rest of the system treats notification delivery as optional.
func SMTPConfigFromEnv() SMTPConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

type Mailer struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

func NewMailer(cfg SMTPConfig, logger ...*zap.Logger) *Mailer {
	l := zap.L().Named("notification.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.mailer")
	}
	if cfg.Username == "" || cfg.Password == "" {
		l.Warn("SMTP credentials not configured, outgoing email disabled")
	}
	return &Mailer{cfg: cfg, logger: l}
}

func (m *Mailer) enabled() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

func (m *Mailer) SendEmail(_ context.Context, to []string, subject, htmlBody string) error {
	if !m.enabled() {
		m.logger.Warn("email skipped, mailer not configured",
			zap.Strings("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return err
	}

	m.logger.Info("email sent",
		zap.Strings("to", to),
		zap.String("subject", subject),
	)
	return nil
}
