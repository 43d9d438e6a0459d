package notify

import (
	"fmt"

	"ortho-app/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends patient notifications over SMTP. Disabled when
// SMTP_HOST is not configured.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewMailer() *Mailer {
	return &Mailer{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		user:     config.SMTPUser,
		password: config.SMTPPassword,
		from:     config.SMTPFrom,
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

// SendTransferNotice tells the patient the item arrived at the
// warehouse and is ready for issue.
func (m *Mailer) SendTransferNotice(to, patientName, orderNumber string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Order %s is ready for issue", orderNumber))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nYour order %s has been transferred to the warehouse and is ready for issue.\n\nPlease visit the issue desk with your identity document.",
		patientName, orderNumber))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return dialer.DialAndSend(msg)
}
