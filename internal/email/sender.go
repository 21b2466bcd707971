package email

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// GomailSender implements Provider over SMTP via gomail
type GomailSender struct {
	config Config
	dialer *gomail.Dialer
}

// NewGomailSender creates a new SMTP sender
func NewGomailSender(config Config) (*GomailSender, error) {
	if config.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if config.SMTPPort <= 0 || config.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", config.SMTPPort)
	}
	if config.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	return &GomailSender{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

// Send delivers a message over SMTP
func (s *GomailSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)

	for _, att := range email.Attachments {
		att := att
		m.Attach(att.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(att.Content))
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}),
		)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *GomailSender) SendApplicationReceived(to, studentName, jobTitle, deadline string) error {
	subject, body := applicationReceivedBody(studentName, jobTitle, deadline)
	return s.Send(&Email{To: []string{to}, Subject: subject, Body: body})
}

func (s *GomailSender) SendResumeReceived(to, studentName, jobTitle string) error {
	subject, body := resumeReceivedBody(studentName, jobTitle)
	return s.Send(&Email{To: []string{to}, Subject: subject, Body: body})
}

func (s *GomailSender) SendNewSubmission(studentName, studentNumber, jobTitle string, attachments []Attachment) error {
	if s.config.NoticeMailbox == "" {
		return nil
	}
	subject, body := newSubmissionBody(studentName, studentNumber, jobTitle)
	return s.Send(&Email{
		To:          []string{s.config.NoticeMailbox},
		Subject:     subject,
		Body:        body,
		Attachments: attachments,
	})
}

func (s *GomailSender) SendStatusUpdate(to, studentName, jobTitle, status, feedback string) error {
	subject, body := statusUpdateBody(studentName, jobTitle, status, feedback)
	return s.Send(&Email{To: []string{to}, Subject: subject, Body: body})
}

func (s *GomailSender) SendDeadlineExpired(to, studentName, jobTitle string) error {
	subject, body := deadlineExpiredBody(studentName, jobTitle)
	return s.Send(&Email{To: []string{to}, Subject: subject, Body: body})
}

func (s *GomailSender) SendOTP(to, name, code string) error {
	subject, body := otpBody(name, code)
	return s.Send(&Email{To: []string{to}, Subject: subject, Body: body})
}

// Close is a no-op, gomail dials per message
func (s *GomailSender) Close() error {
	return nil
}
