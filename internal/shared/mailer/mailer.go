package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"os"

	"go.uber.org/zap"
)

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	host   string
	port   string
	from   string
	auth   smtp.Auth
	logger *zap.Logger
}

// NewFromEnv membaca SMTP_HOST, SMTP_PORT, SMTP_FROM, SMTP_USER, SMTP_PASS.
// Tanpa SMTP_HOST, jatuh ke logMailer supaya dev lokal tetap jalan.
func NewFromEnv(logger *zap.Logger) Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return &logMailer{logger: logger.Named("mailer.log")}
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	var auth smtp.Auth
	if user := os.Getenv("SMTP_USER"); user != "" {
		auth = smtp.PlainAuth("", user, os.Getenv("SMTP_PASS"), host)
	}

	return &smtpMailer{
		host:   host,
		port:   port,
		from:   os.Getenv("SMTP_FROM"),
		auth:   auth,
		logger: logger.Named("mailer.smtp"),
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		m.logger.Error("send mail failed", zap.String("to", to), zap.Error(err))
		return err
	}

	m.logger.Debug("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// logMailer hanya menulis ke log; dipakai saat SMTP tidak dikonfigurasi.
type logMailer struct {
	logger *zap.Logger
}

func (m *logMailer) Send(_ context.Context, to, subject, body string) error {
	m.logger.Info("mail (not sent, smtp disabled)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
