package email

// Mailer is the contract for outbound mail. Delivery is best-effort; callers
// must not fail their own operation on a mailer error.
type Mailer interface {
	SendPlain(to []string, subject, body string) error
}
