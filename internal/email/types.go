package email

// Email represents a single outbound message
type Email struct {
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Attachment represents an email attachment
type Attachment struct {
	Name        string
	Content     []byte
	ContentType string
}

// Config holds SMTP connection settings
type Config struct {
	SMTPHost      string
	SMTPPort      int
	Username      string
	Password      string
	FromEmail     string
	FromName      string
	NoticeMailbox string // department mailbox that receives submission notices
}
