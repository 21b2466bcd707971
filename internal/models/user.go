package models

type User struct {
	BaseModel
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	StudentID    string   `gorm:"uniqueIndex:idx_users_student_id,where:student_id <> ''" json:"student_id"`
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string   `json:"phone"`
	PasswordHash string   `gorm:"not null" json:"-"`
}

func (u *User) IsTeacher() bool {
	return u.Role == UserRoleTeacher
}

func (u *User) IsStudent() bool {
	return u.Role == UserRoleStudent
}
