package dto

import (
	"time"

	"psychportal_backend/internal/models"
)

// RegisterRequest - student self-registration
type RegisterRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest - credentials login. The identifier may be an email
// address or a student ID.
type LoginRequest struct {
	EmailOrStudentID string `json:"email_or_student_id" validate:"required"`
	Password         string `json:"password" validate:"required"`
}

// LoginResponse - access token plus basic identity
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	User        UserDTO `json:"user"`
}

// UserDTO - basic user information
type UserDTO struct {
	ID        string          `json:"id"`
	StudentID string          `json:"student_id,omitempty"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewUserDTO maps a user model to its transport form
func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		StudentID: u.StudentID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
