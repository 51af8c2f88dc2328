package memcache

import (
	"sync"
	"time"
)

// ResetTokenStore keeps single-use password-reset tokens in process memory.
// Tokens are short-lived; losing them on restart only means the user requests
// a new mail.
type ResetTokenStore interface {
	Set(token string, email string, ttl time.Duration)

	// Consume returns the email for token if not expired and removes it
	// (single-use). Returns "" when missing or expired.
	Consume(token string) string
}

type entry struct {
	email     string
	expiresAt time.Time
}

type ResetTokens struct {
	mu   sync.Mutex
	data map[string]entry
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{data: make(map[string]entry)}
}

func (s *ResetTokens) Set(token string, email string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{email: email, expiresAt: time.Now().Add(ttl)}
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.email
}
