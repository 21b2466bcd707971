package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychportal_backend/internal/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("wrong horse", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}

func TestGenerateAndParseToken(t *testing.T) {
	InitJWT("test-secret", time.Hour)

	token, err := GenerateToken("user-1", models.UserRoleTeacher)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleTeacher, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-a", time.Hour)
	token, err := GenerateToken("user-1", models.UserRoleStudent)
	require.NoError(t, err)

	InitJWT("secret-b", time.Hour)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	InitJWT("test-secret", -time.Minute)
	token, err := GenerateToken("user-1", models.UserRoleStudent)
	require.NoError(t, err)

	InitJWT("test-secret", time.Hour)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGenerateCodeIsSixDigits(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestOTPStoreConsumeIsSingleUse(t *testing.T) {
	store := NewOTPStore(time.Minute)
	store.Put("u1", "123456", PendingChange{Name: "New Name", Phone: "+700"})

	change, ok := store.Consume("u1", "123456")
	require.True(t, ok)
	assert.Equal(t, "New Name", change.Name)
	assert.Equal(t, "+700", change.Phone)

	_, ok = store.Consume("u1", "123456")
	assert.False(t, ok)
}

func TestOTPStoreRejectsWrongCode(t *testing.T) {
	store := NewOTPStore(time.Minute)
	store.Put("u1", "123456", PendingChange{})

	_, ok := store.Consume("u1", "654321")
	assert.False(t, ok)

	// wrong attempt does not burn the code
	_, ok = store.Consume("u1", "123456")
	assert.True(t, ok)
}

func TestOTPStoreExpires(t *testing.T) {
	store := NewOTPStore(-time.Second)
	store.Put("u1", "123456", PendingChange{})

	_, ok := store.Consume("u1", "123456")
	assert.False(t, ok)
}

func TestOTPStoreReplacesEarlierCode(t *testing.T) {
	store := NewOTPStore(time.Minute)
	store.Put("u1", "111111", PendingChange{Name: "First"})
	store.Put("u1", "222222", PendingChange{Name: "Second"})

	_, ok := store.Consume("u1", "111111")
	assert.False(t, ok)

	change, ok := store.Consume("u1", "222222")
	require.True(t, ok)
	assert.Equal(t, "Second", change.Name)
}
