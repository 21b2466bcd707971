package models

type Job struct {
	BaseModel
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"type:text" json:"job_description"`
	Specification string    `gorm:"type:text" json:"job_specification"`
	Vacancies     int       `gorm:"not null;default:0;check:vacancies >= 0" json:"vacancies"`
	ProofOfFunds  string    `json:"pof_filename,omitempty"` // optional proof-of-funding upload
	CreatedBy     string    `gorm:"type:uuid;not null;index" json:"created_by"`
	Status        JobStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
}
