package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

var _ Mailer = (*SMTPMailer)(nil)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type SMTPMailer struct {
	from   string
	pass   string
	host   string
	port   int
	sender string
}

func NewSMTPMailer(cfg *SMTPConfig, sender string) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.User,
		pass:   cfg.Password,
		host:   cfg.Host,
		port:   cfg.Port,
		sender: sender,
	}
}

func (e *SMTPMailer) send(to []string, subject, body, contentType string) error {
	auth := smtp.PlainAuth("", e.from, e.pass, e.host)

	recipients := strings.Join(to, ", ")
	headers := "From: " + e.sender + "\r\n" +
		"To: " + recipients + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"UTF-8\"\r\n\r\n"

	message := headers + body
	addr := fmt.Sprintf("%s:%d", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, to, []byte(message)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	slog.Info("Email sent.")
	return nil
}

func (e *SMTPMailer) SendPlain(to []string, subject, body string) error {
	return e.send(to, subject, body, "text/plain")
}
