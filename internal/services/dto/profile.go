package dto

// ProfileChangeRequest - student asks to change editable profile fields.
// Email and student number are immutable. Name and phone apply directly;
// a password change is held until the emailed OTP is confirmed.
type ProfileChangeRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	NewPassword string `json:"new_password" validate:"omitempty,min=6"`
}

// ProfileChangeConfirm - the emailed code
type ProfileChangeConfirm struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// ProfileChangeResult - outcome of a change request. When OTPRequired is
// set the change is pending and User is nil until confirmation.
type ProfileChangeResult struct {
	OTPRequired bool     `json:"otp_required"`
	User        *UserDTO `json:"user,omitempty"`
}
