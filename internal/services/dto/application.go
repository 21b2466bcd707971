package dto

import (
	"time"

	"psychportal_backend/internal/models"
)

// ApplyRequest - student applies to a job
type ApplyRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// AssessRequest - teacher disposition of an application
type AssessRequest struct {
	Status   string `json:"status" validate:"required,is-decision-status"`
	Feedback string `json:"feedback"`
}

// BulkClearRequest - teacher removes a batch of applications
type BulkClearRequest struct {
	ApplicationIDs []string `json:"application_ids" validate:"required,min=1,dive,uuid"`
}

// ApplicationListFilter - query narrowing for the teacher report
type ApplicationListFilter struct {
	Status      string `form:"status" validate:"omitempty,is-application-status"`
	StudentName string `form:"student"`
	HasResume   *bool  `form:"has_resume"`
}

// ApplicationDTO - an application as shown to its owner. Deadline and
// upload times are formatted in the portal display timezone.
type ApplicationDTO struct {
	ID               string                   `json:"id"`
	JobID            string                   `json:"job_id"`
	JobTitle         string                   `json:"job_title,omitempty"`
	Status           models.ApplicationStatus `json:"status"`
	StatusMessage    string                   `json:"status_message"`
	AppliedAt        time.Time                `json:"applied_at"`
	ResumeDeadline   time.Time                `json:"resume_deadline"`
	DeadlineDisplay  string                   `json:"resume_deadline_display"`
	ResumeUploaded   bool                     `json:"resume_uploaded"`
	ResumeUploadedAt *time.Time               `json:"resume_uploaded_at,omitempty"`
	TeacherFeedback  string                   `json:"teacher_feedback,omitempty"`
}

// ApplicationDetailDTO - teacher view with student identity attached
type ApplicationDetailDTO struct {
	ApplicationDTO
	StudentName   string `json:"student_name"`
	StudentNumber string `json:"student_number"`
	StudentEmail  string `json:"student_email"`

	// Hours between applying and uploading, for the assessment view
	UploadDurationHours *float64 `json:"upload_duration_hours,omitempty"`
}

// BulkClearResult - outcome of a bulk clear
type BulkClearResult struct {
	Removed          int            `json:"removed"`
	VacanciesFreed   map[string]int `json:"vacancies_freed"`
	FilesDeleted     int            `json:"files_deleted"`
	FileDeleteErrors int            `json:"file_delete_errors"`
}
