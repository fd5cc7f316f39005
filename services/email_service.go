// File: /services/email_service.go
package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nousyukukangen-ringo/isibasigeru/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// Enabled reports whether an SMTP host is configured. When it is not, mail
// sending is silently skipped.
func (es *EmailService) Enabled() bool {
	return es.config.SMTPHost != ""
}

// SendWelcomeEmail greets a freshly signed-up user.
func (es *EmailService) SendWelcomeEmail(email string) error {
	if !es.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Isibasigeru!")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Welcome!</h2>
		<p>Your account <b>%s</b> is ready.</p>
		<p>Capture a photo, doodle on it and pin it to the map.</p>
	`, email))

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
