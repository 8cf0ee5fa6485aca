package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/salonbook/salon-web/internal/domain/booking"
	"github.com/salonbook/salon-web/internal/domain/user"
)

// Identity is the logged-in user as reported by the backend at login.
type Identity struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           user.Role `json:"role"`
	Specialization string    `json:"specialization,omitempty"`
}

// Actor returns the identity as a lifecycle actor.
func (i Identity) Actor() booking.Actor {
	return booking.Actor{ID: i.ID, Role: i.Role}
}

// Session is one browser's context. A browser may send overlapping requests,
// so the identity is guarded.
type Session struct {
	mu        sync.RWMutex
	id        string
	identity  *Identity
	createdAt time.Time
}

// New creates an anonymous session.
func New(id string) *Session {
	return &Session{id: id, createdAt: time.Now()}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Login replaces the stored identity.
func (s *Session) Login(identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
}

// Logout clears the identity.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
}

// Identity returns a copy of the current identity.
func (s *Session) Identity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// IsAuthenticated returns true if someone is logged in.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Identity()
	return ok
}

// HasRole returns true if the identity holds one of roles.
func (s *Session) HasRole(roles ...user.Role) bool {
	identity, ok := s.Identity()
	if !ok {
		return false
	}
	for _, r := range roles {
		if identity.Role == r {
			return true
		}
	}
	return false
}

// Require returns the identity if it holds one of roles. With no roles any
// logged-in identity passes.
func (s *Session) Require(roles ...user.Role) (Identity, error) {
	identity, ok := s.Identity()
	if !ok {
		return Identity{}, ErrNotAuthenticated
	}
	if len(roles) == 0 {
		return identity, nil
	}
	for _, r := range roles {
		if identity.Role == r {
			return identity, nil
		}
	}
	return Identity{}, fmt.Errorf("%w: role %s", ErrForbidden, identity.Role)
}

type record struct {
	ID        string    `json:"id"`
	Identity  *Identity `json:"identity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON encodes the session for a store.
func (s *Session) MarshalJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(record{ID: s.id, Identity: s.identity, CreatedAt: s.createdAt})
}

// UnmarshalJSON decodes a stored session.
func (s *Session) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = r.ID
	s.identity = r.Identity
	s.createdAt = r.CreatedAt
	return nil
}
