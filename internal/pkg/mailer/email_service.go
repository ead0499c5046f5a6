package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRenewalReminder(name string, dueDate time.Time, daysUntil int, cost float64, currency string) error
	SendResetReminder(name string, dueDate time.Time, daysUntil int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	recipient   string
}

// NewEmailService builds the reminder mailer. Single-user app: every mail
// goes to the one configured recipient.
func NewEmailService(host string, port int, username, password, senderName, recipient string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		recipient:   recipient,
	}
}

func (s *emailService) send(subject, body string) error {
	if s.recipient == "" {
		return nil // reminders by mail not configured
	}
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendRenewalReminder(name string, dueDate time.Time, daysUntil int, cost float64, currency string) error {
	subject := fmt.Sprintf("%s renews in %d day(s)", name, daysUntil)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Upcoming renewal</h2>
			<p><strong>%s</strong> renews on %s.</p>
			<p>Amount due: %.2f %s</p>
		</div>
	`, name, dueDate.Format("Monday, 2 January 2006"), cost, currency)
	return s.send(subject, body)
}

func (s *emailService) SendResetReminder(name string, dueDate time.Time, daysUntil int) error {
	subject := fmt.Sprintf("%s credits reset in %d day(s)", name, daysUntil)
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Upcoming credit reset</h2>
			<p><strong>%s</strong> resets on %s. Use remaining credits before then.</p>
		</div>
	`, name, dueDate.Format("Monday, 2 January 2006"))
	return s.send(subject, body)
}
