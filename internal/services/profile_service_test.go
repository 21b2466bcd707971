package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychportal_backend/internal/appErrors"
	"psychportal_backend/internal/auth"
	"psychportal_backend/internal/models"
	"psychportal_backend/internal/services/dto"
)

// failingOTPMailer refuses to send codes so the request must fail
type failingOTPMailer struct {
	fakeMailer
}

func (m *failingOTPMailer) SendOTP(to, name, code string) error {
	return errors.New("smtp down")
}

func newProfileFixture(t *testing.T) (*fakeUserRepo, *fakeMailer, ProfileService) {
	t.Helper()
	users := newFakeUserRepo(student("u1", "S100"))
	mailer := &fakeMailer{}
	svc := NewProfileService(users, auth.NewOTPStore(time.Minute), mailer)
	return users, mailer, svc
}

func TestProfileNamePhoneChangeAppliesDirectly(t *testing.T) {
	users, mailer, svc := newProfileFixture(t)

	result, err := svc.RequestChange("u1", &dto.ProfileChangeRequest{Name: "New Name", Phone: "+7 700 123"})
	require.NoError(t, err)

	assert.False(t, result.OTPRequired)
	require.NotNil(t, result.User)
	assert.Equal(t, "New Name", result.User.Name)
	assert.Equal(t, "+7 700 123", result.User.Phone)
	assert.Equal(t, "New Name", users.users["u1"].Name)

	// no verification code involved without a password change
	assert.Empty(t, mailer.byKind("otp"))
}

func TestProfilePasswordChangeRequiresOTP(t *testing.T) {
	users, mailer, svc := newProfileFixture(t)
	oldHash := users.users["u1"].PasswordHash

	result, err := svc.RequestChange("u1", &dto.ProfileChangeRequest{
		Name:        "New Name",
		NewPassword: "fresh-secret",
	})
	require.NoError(t, err)
	assert.True(t, result.OTPRequired)
	assert.Nil(t, result.User)

	// nothing is applied until the code comes back
	assert.Equal(t, "Student S100", users.users["u1"].Name)
	assert.Equal(t, oldHash, users.users["u1"].PasswordHash)

	otps := mailer.byKind("otp")
	require.Len(t, otps, 1)
	code := otps[0].status
	require.Len(t, code, 6)

	out, err := svc.ConfirmChange("u1", &dto.ProfileChangeConfirm{Code: code})
	require.NoError(t, err)
	assert.Equal(t, "New Name", out.Name)
	assert.Equal(t, "New Name", users.users["u1"].Name)
	assert.NotEqual(t, oldHash, users.users["u1"].PasswordHash)
	assert.True(t, auth.CheckPasswordHash("fresh-secret", users.users["u1"].PasswordHash))

	// email and student ID never change through this flow
	assert.Equal(t, "s100@uni.edu", out.Email)
	assert.Equal(t, "S100", out.StudentID)
}

func TestProfilePasswordChangeRejectsWeakPassword(t *testing.T) {
	_, mailer, svc := newProfileFixture(t)

	_, err := svc.RequestChange("u1", &dto.ProfileChangeRequest{NewPassword: "123"})
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
	assert.Empty(t, mailer.byKind("otp"))
}

func TestProfileConfirmRejectsWrongCode(t *testing.T) {
	users, _, svc := newProfileFixture(t)

	_, err := svc.RequestChange("u1", &dto.ProfileChangeRequest{Name: "New Name", NewPassword: "fresh-secret"})
	require.NoError(t, err)

	_, err = svc.ConfirmChange("u1", &dto.ProfileChangeConfirm{Code: "000000"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidOTP)
	assert.Equal(t, "Student S100", users.users["u1"].Name)
}

func TestProfileConfirmCodeIsSingleUse(t *testing.T) {
	_, mailer, svc := newProfileFixture(t)

	_, err := svc.RequestChange("u1", &dto.ProfileChangeRequest{Name: "A", NewPassword: "fresh-secret"})
	require.NoError(t, err)
	code := mailer.byKind("otp")[0].status

	_, err = svc.ConfirmChange("u1", &dto.ProfileChangeConfirm{Code: code})
	require.NoError(t, err)

	_, err = svc.ConfirmChange("u1", &dto.ProfileChangeConfirm{Code: code})
	assert.ErrorIs(t, err, appErrors.ErrInvalidOTP)
}

func TestProfileRequestFailsWhenOTPMailFails(t *testing.T) {
	users := newFakeUserRepo(student("u1", "S100"))
	svc := NewProfileService(users, auth.NewOTPStore(time.Minute), &failingOTPMailer{})

	_, err := svc.RequestChange("u1", &dto.ProfileChangeRequest{Name: "New Name", NewPassword: "fresh-secret"})
	assert.Error(t, err)
	assert.Equal(t, "Student S100", users.users["u1"].Name)
}

func TestProfileRequestUnknownUser(t *testing.T) {
	_, _, svc := newProfileFixture(t)

	_, err := svc.RequestChange("nope", &dto.ProfileChangeRequest{Name: "X"})
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestProfileGet(t *testing.T) {
	_, _, svc := newProfileFixture(t)

	out, err := svc.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleStudent, out.Role)
	assert.Equal(t, "S100", out.StudentID)
}
