package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPStore_GenerateAndVerify(t *testing.T) {
	store := newOTPStore()

	code, err := store.GenerateOTP("user@example.com")
	require.NoError(t, err)
	require.Len(t, code, 4)

	require.NoError(t, store.VerifyOTP("user@example.com", code))

	// Codes are single use
	err = store.VerifyOTP("user@example.com", code)
	assert.True(t, errors.Is(err, auth.ErrOTPExpired))
}

func TestOTPStore_WrongCode(t *testing.T) {
	store := newOTPStore()

	code, err := store.GenerateOTP("user@example.com")
	require.NoError(t, err)

	wrong := "0000"
	if code == wrong {
		wrong = "0001"
	}
	err = store.VerifyOTP("user@example.com", wrong)
	assert.True(t, errors.Is(err, auth.ErrInvalidOTP))

	// A wrong attempt does not consume the code
	require.NoError(t, store.VerifyOTP("user@example.com", code))
}

func TestOTPStore_Expiry(t *testing.T) {
	store := newOTPStore()
	current := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	code, err := store.GenerateOTP("user@example.com")
	require.NoError(t, err)

	current = current.Add(otpTTL + time.Second)
	err = store.VerifyOTP("user@example.com", code)
	assert.True(t, errors.Is(err, auth.ErrOTPExpired))
}

func TestOTPStore_NeverGenerated(t *testing.T) {
	store := newOTPStore()
	err := store.VerifyOTP("nobody@example.com", "1234")
	assert.True(t, errors.Is(err, auth.ErrOTPExpired))
}

func TestOTPStore_ResetKey(t *testing.T) {
	store := newOTPStore()

	key, err := store.IssueResetKey("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, key)

	email, ok := store.ConsumeResetKey(key)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", email)

	// Keys are single use
	_, ok = store.ConsumeResetKey(key)
	assert.False(t, ok)
}

func TestOTPStore_ResetKeyExpiry(t *testing.T) {
	store := newOTPStore()
	current := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	key, err := store.IssueResetKey("user@example.com")
	require.NoError(t, err)

	current = current.Add(resetKeyTTL + time.Second)
	_, ok := store.ConsumeResetKey(key)
	assert.False(t, ok)
}
