package app

import (
	"psychportal_backend/internal/email"
	"psychportal_backend/internal/logger"
)

// NoopEmailProvider is used when SMTP is not configured. Every send is
// logged and dropped.
type NoopEmailProvider struct{}

func (p *NoopEmailProvider) Send(e *email.Email) error {
	logger.Info("email send skipped (no SMTP)", "subject", e.Subject, "to", e.To)
	return nil
}

func (p *NoopEmailProvider) SendApplicationReceived(to, studentName, jobTitle, deadline string) error {
	logger.Info("email send skipped (no SMTP)", "kind", "application_received", "to", to)
	return nil
}

func (p *NoopEmailProvider) SendResumeReceived(to, studentName, jobTitle string) error {
	logger.Info("email send skipped (no SMTP)", "kind", "resume_received", "to", to)
	return nil
}

func (p *NoopEmailProvider) SendNewSubmission(studentName, studentNumber, jobTitle string, attachments []email.Attachment) error {
	logger.Info("email send skipped (no SMTP)", "kind", "new_submission", "student", studentNumber)
	return nil
}

func (p *NoopEmailProvider) SendStatusUpdate(to, studentName, jobTitle, status, feedback string) error {
	logger.Info("email send skipped (no SMTP)", "kind", "status_update", "to", to)
	return nil
}

func (p *NoopEmailProvider) SendDeadlineExpired(to, studentName, jobTitle string) error {
	logger.Info("email send skipped (no SMTP)", "kind", "deadline_expired", "to", to)
	return nil
}

func (p *NoopEmailProvider) SendOTP(to, name, code string) error {
	logger.Info("email send skipped (no SMTP)", "kind", "otp", "to", to)
	return nil
}

func (p *NoopEmailProvider) Close() error { return nil }
