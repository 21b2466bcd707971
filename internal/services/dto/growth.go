package dto

import "time"

// GrowthResponseRequest - student submits a reflection
type GrowthResponseRequest struct {
	ActivityID   int    `json:"activity_id" validate:"required,min=1,max=100"`
	ResponseText string `json:"response_text" validate:"required"`
}

// GrowthActivityDTO - a prompt with the student's answer, if any
type GrowthActivityDTO struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Desc         string     `json:"desc"`
	Icon         string     `json:"icon"`
	ResponseText string     `json:"response_text,omitempty"`
	AnsweredAt   *time.Time `json:"answered_at,omitempty"`
}

// GrowthResponseDetailDTO - teacher view of one reflection
type GrowthResponseDetailDTO struct {
	ID            string    `json:"id"`
	ActivityID    int       `json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	StudentName   string    `json:"student_name"`
	StudentEmail  string    `json:"student_email"`
	ResponseText  string    `json:"response_text"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SelfAssessmentRequest - the five-question self-check, keyed q1..q5
type SelfAssessmentRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// SelfAssessmentDTO - a stored self-check
type SelfAssessmentDTO struct {
	Answers   map[string]string `json:"answers"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SelfAssessmentDetailDTO - teacher view of one self-check
type SelfAssessmentDetailDTO struct {
	ID           string            `json:"id"`
	StudentName  string            `json:"student_name"`
	StudentEmail string            `json:"student_email"`
	Answers      map[string]string `json:"answers"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
