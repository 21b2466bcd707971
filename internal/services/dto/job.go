package dto

import (
	"time"

	"psychportal_backend/internal/models"
)

// CreateJobRequest - teacher posts a new position
type CreateJobRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Specification string `json:"specification"`
	Vacancies     int    `json:"vacancies" validate:"required,min=1"`
	ProofOfFunds  string `json:"proof_of_funds"`
}

// UpdateJobRequest - teacher edits a position
type UpdateJobRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Specification string `json:"specification"`
	Vacancies     int    `json:"vacancies" validate:"required,min=0"`
	ProofOfFunds  string `json:"proof_of_funds"`
	Status        string `json:"status" validate:"required,oneof=open closed"`
}

// JobDTO - a job posting as shown to students
type JobDTO struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Specification string           `json:"specification,omitempty"`
	Vacancies     int              `json:"vacancies"`
	ProofOfFunds  string           `json:"proof_of_funds,omitempty"`
	Status        models.JobStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewJobDTO maps a job model to its transport form
func NewJobDTO(j *models.Job) JobDTO {
	return JobDTO{
		ID:            j.ID,
		Title:         j.Title,
		Description:   j.Description,
		Specification: j.Specification,
		Vacancies:     j.Vacancies,
		ProofOfFunds:  j.ProofOfFunds,
		Status:        j.Status,
		CreatedAt:     j.CreatedAt,
	}
}
