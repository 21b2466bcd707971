package email

// Provider defines the interface for sending portal emails. All sends are
// best effort: callers log failures and carry on, mail never gates a
// state change.
type Provider interface {
	// Send delivers an arbitrary message
	Send(email *Email) error

	// SendApplicationReceived confirms a new application to the student
	SendApplicationReceived(to, studentName, jobTitle, deadline string) error

	// SendResumeReceived confirms a resume upload to the student
	SendResumeReceived(to, studentName, jobTitle string) error

	// SendNewSubmission forwards the uploaded documents to the
	// department notice mailbox
	SendNewSubmission(studentName, studentNumber, jobTitle string, attachments []Attachment) error

	// SendStatusUpdate informs the student of a teacher decision.
	// Feedback is included only when non-empty.
	SendStatusUpdate(to, studentName, jobTitle, status, feedback string) error

	// SendDeadlineExpired informs the student their application was
	// auto-rejected for a missed upload deadline
	SendDeadlineExpired(to, studentName, jobTitle string) error

	// SendOTP delivers a profile change verification code
	SendOTP(to, name, code string) error

	// Close releases the underlying connection
	Close() error
}
