package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/auth"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/services/dto"
)

func TestRegisterNormalizesIdentifiers(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	err := svc.Register(&dto.RegisterRequest{
		StudentID: "  psy2026  ",
		Name:      "Asel K",
		Email:     "Asel.K@Uni.EDU",
		Phone:     "+7 700 000 0000",
		Password:  "secret1",
	})
	require.NoError(t, err)

	user, err := repo.FindByStudentID("PSY2026")
	require.NoError(t, err)
	assert.Equal(t, "asel.k@uni.edu", user.Email)
	assert.Equal(t, models.UserRoleStudent, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	err := svc.Register(&dto.RegisterRequest{
		StudentID: "PSY1",
		Email:     "a@uni.edu",
		Password:  "short",
	})
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
}

func TestRegisterRejectsDuplicateAccount(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	req := &dto.RegisterRequest{
		StudentID: "PSY1",
		Email:     "a@uni.edu",
		Password:  "secret1",
	}
	require.NoError(t, svc.Register(req))

	err := svc.Register(req)
	assert.ErrorIs(t, err, appErrors.ErrAccountAlreadyExists)
}

func TestLoginByEmailOrStudentID(t *testing.T) {
	auth.InitJWT("test-secret", time.Hour)

	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	require.NoError(t, svc.Register(&dto.RegisterRequest{
		StudentID: "PSY2026",
		Name:      "Asel K",
		Email:     "asel@uni.edu",
		Password:  "secret1",
	}))

	for _, identifier := range []string{"asel@uni.edu", "ASEL@UNI.EDU", "PSY2026", "psy2026"} {
		resp, err := svc.Login(&dto.LoginRequest{
			EmailOrStudentID: identifier,
			Password:         "secret1",
		})
		require.NoError(t, err, "identifier %q", identifier)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "asel@uni.edu", resp.User.Email)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth.InitJWT("test-secret", time.Hour)

	svc := NewAuthService(newFakeUserRepo())
	require.NoError(t, svc.Register(&dto.RegisterRequest{
		StudentID: "PSY2026",
		Email:     "asel@uni.edu",
		Password:  "secret1",
	}))

	_, err := svc.Login(&dto.LoginRequest{EmailOrStudentID: "asel@uni.edu", Password: "nope-1"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{EmailOrStudentID: "nobody@uni.edu", Password: "secret1"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}
