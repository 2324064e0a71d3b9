package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/flamingo-hr/attendance-backend-go/internal/domain/auth"
)

const (
	otpTTL      = 5 * time.Minute
	resetKeyTTL = 10 * time.Minute
)

type otpEntry struct {
	code      string
	expiresAt time.Time
}

type resetKeyEntry struct {
	email     string
	expiresAt time.Time
}

// otpStore keeps pending verification codes and password reset keys in
// memory. Entries expire on read, a single instance serves the process.
type otpStore struct {
	mu        sync.Mutex
	otps      map[string]otpEntry
	resetKeys map[string]resetKeyEntry
	now       func() time.Time
}

func newOTPStore() *otpStore {
	return &otpStore{
		otps:      make(map[string]otpEntry),
		resetKeys: make(map[string]resetKeyEntry),
		now:       time.Now,
	}
}

// GenerateOTP creates and stores a 4-digit code for the email.
func (s *otpStore) GenerateOTP(email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	code := fmt.Sprintf("%04d", n.Int64())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[email] = otpEntry{
		code:      code,
		expiresAt: s.now().Add(otpTTL),
	}
	return code, nil
}

// VerifyOTP checks a code against the stored entry. A matching code is
// consumed and cannot be reused.
func (s *otpStore) VerifyOTP(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.otps[email]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.otps, email)
		return auth.ErrOTPExpired
	}
	if entry.code != code {
		return auth.ErrInvalidOTP
	}

	delete(s.otps, email)
	return nil
}

// IssueResetKey creates an opaque single-use password reset key for the
// email.
func (s *otpStore) IssueResetKey(email string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset key: %w", err)
	}
	key := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetKeys[key] = resetKeyEntry{
		email:     email,
		expiresAt: s.now().Add(resetKeyTTL),
	}
	return key, nil
}

// ConsumeResetKey resolves a reset key to its email and invalidates it.
func (s *otpStore) ConsumeResetKey(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.resetKeys[key]
	delete(s.resetKeys, key)
	if !ok || s.now().After(entry.expiresAt) {
		return "", false
	}
	return entry.email, true
}
