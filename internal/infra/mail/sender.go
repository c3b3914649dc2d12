package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers template test sends over SMTP. Real campaign email is the
// automation workflow's job, not ours.
type Sender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewSender(host string, port int, user, password, from string) *Sender {
	return &Sender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *Sender) Configured() bool {
	return s.Host != "" && s.User != ""
}

func (s *Sender) SendTemplateTest(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
