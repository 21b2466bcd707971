package services

import (
	"strings"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/auth"
	"psychportal_backend/internal/email"
	"psychportal_backend/internal/logger"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/services/dto"
)

type ProfileService interface {
	// RequestChange applies a name/phone edit directly. If the request
	// includes a new password the whole change is held instead and a
	// one-time code is emailed; nothing is applied until confirmation.
	RequestChange(userID string, req *dto.ProfileChangeRequest) (*dto.ProfileChangeResult, error)

	// ConfirmChange applies the held change if the code matches
	ConfirmChange(userID string, req *dto.ProfileChangeConfirm) (*dto.UserDTO, error)

	// Get returns the current profile
	Get(userID string) (*dto.UserDTO, error)
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
	otpStore *auth.OTPStore
	mailer   email.Provider
}

func NewProfileService(userRepo repositories.UserRepository, otpStore *auth.OTPStore, mailer email.Provider) ProfileService {
	return &ProfileServiceImpl{
		userRepo: userRepo,
		otpStore: otpStore,
		mailer:   mailer,
	}
}

func (s *ProfileServiceImpl) RequestChange(userID string, req *dto.ProfileChangeRequest) (*dto.ProfileChangeResult, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)

	// No password involved, the edit is harmless enough to apply at once.
	if req.NewPassword == "" {
		if err := s.userRepo.UpdateProfile(userID, name, phone); err != nil {
			return nil, appErrors.InternalError(err)
		}
		out, err := s.Get(userID)
		if err != nil {
			return nil, err
		}
		return &dto.ProfileChangeResult{User: out}, nil
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return nil, appErrors.ErrWeakPassword
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	code, err := auth.GenerateCode()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	s.otpStore.Put(userID, code, auth.PendingChange{
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
	})

	// Unlike the other notices this send is load bearing, without the
	// code the student cannot confirm.
	if err := s.mailer.SendOTP(user.Email, user.Name, code); err != nil {
		logger.MailLog("otp", user.Email, err)
		return nil, appErrors.InternalError(err)
	}

	return &dto.ProfileChangeResult{OTPRequired: true}, nil
}

func (s *ProfileServiceImpl) ConfirmChange(userID string, req *dto.ProfileChangeConfirm) (*dto.UserDTO, error) {
	change, ok := s.otpStore.Consume(userID, req.Code)
	if !ok {
		return nil, appErrors.ErrInvalidOTP
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	user.Name = change.Name
	user.Phone = change.Phone
	if change.PasswordHash != "" {
		user.PasswordHash = change.PasswordHash
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return s.Get(userID)
}

func (s *ProfileServiceImpl) Get(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	out := dto.NewUserDTO(user)
	return &out, nil
}
