package email

import "log/slog"

var _ Mailer = (*LogMailer)(nil)

// LogMailer is used when SMTP is not configured. It logs the message body
// instead of sending it so the verification link stays reachable during
// development.
type LogMailer struct{}

func (m *LogMailer) SendPlain(to []string, subject, body string) error {
	slog.Warn("SMTP not configured, logging email instead", "to", to, "subject", subject, "body", body)
	return nil
}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}
