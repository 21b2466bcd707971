package services

import (
	"strings"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/auth"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/repositories"
	"psychportal_backend/internal/services/dto"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register creates a student account. Email is stored lowercased and the
// student ID uppercased so logins are case insensitive.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return appErrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user := &models.User{
		Role:         models.UserRoleStudent,
		StudentID:    strings.ToUpper(strings.TrimSpace(req.StudentID)),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return appErrors.ErrAccountAlreadyExists
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// Login authenticates by email or student ID
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(req.EmailOrStudentID)

	user, err := s.userRepo.FindByEmail(strings.ToLower(identifier))
	if err != nil {
		if !appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.InternalError(err)
		}
		user, err = s.userRepo.FindByStudentID(strings.ToUpper(identifier))
		if err != nil {
			if appErrors.Is(err, repositories.ErrUserNotFound) {
				return nil, appErrors.ErrInvalidCredentials
			}
			return nil, appErrors.InternalError(err)
		}
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.NewUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) GetUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}
