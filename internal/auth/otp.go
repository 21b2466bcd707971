package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// PendingChange holds the profile fields a student asked to change. The
// change is applied only after the emailed OTP is confirmed.
type PendingChange struct {
	Name         string
	Phone        string
	PasswordHash string // empty when the password stays unchanged
}

type otpEntry struct {
	code      string
	change    PendingChange
	expiresAt time.Time
}

// OTPStore keeps pending profile changes keyed by user ID. Codes are
// single-use and expire after the configured TTL. State is per-process,
// a restart simply voids outstanding codes.
type OTPStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]otpEntry
}

func NewOTPStore(ttl time.Duration) *OTPStore {
	return &OTPStore{
		ttl:     ttl,
		entries: make(map[string]otpEntry),
	}
}

// GenerateCode returns a random 6-digit code
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Put stores a pending change for the user, replacing any earlier one
func (s *OTPStore) Put(userID, code string, change PendingChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = otpEntry{
		code:      code,
		change:    change,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Consume validates the code for the user and returns the pending change.
// The entry is removed on success; expired entries are removed on sight.
func (s *OTPStore) Consume(userID, code string) (PendingChange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return PendingChange{}, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, userID)
		return PendingChange{}, false
	}
	if entry.code != code {
		return PendingChange{}, false
	}

	delete(s.entries, userID)
	return entry.change, true
}
