package models

import "time"

// Application binds one student to one job posting. An application is
// created with status pending_resume and a 48-hour upload deadline; all
// timestamps are stored in UTC.
type Application struct {
	BaseModel
	JobID     string `gorm:"type:uuid;not null;index" json:"job_id"`
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	StudentID string `gorm:"not null" json:"student_id"` // denormalized for file naming

	Status          ApplicationStatus `gorm:"type:varchar(30);not null;default:'pending_resume'" json:"status"`
	AppliedAt       time.Time         `gorm:"not null" json:"applied_at"`
	ResumeDeadline  time.Time         `gorm:"not null" json:"resume_deadline"`
	ResumeFile      string            `json:"resume_filename,omitempty"`
	PhotoFile       string            `json:"photo_filename,omitempty"`
	ResumeUploaded  *time.Time        `gorm:"column:resume_uploaded_at" json:"resume_uploaded_at,omitempty"`
	TeacherFeedback string            `gorm:"type:text" json:"teacher_feedback"`

	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// HasResume reports whether a resume was ever uploaded. The deadline sweep
// only touches applications where this is false.
func (a *Application) HasResume() bool {
	return a.ResumeFile != ""
}
