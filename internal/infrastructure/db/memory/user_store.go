// Package memory provides an immutable in-memory credential store: the full
// user list is built once at startup and never mutated, so concurrent reads
// need no locking.
package memory

import (
	"context"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

// UserStore is a read-only snapshot of user records keyed by username.
type UserStore struct {
	users map[string]*domain.User
}

// NewUserStore builds the snapshot. Password hashes must already be computed;
// the store never sees plaintext.
func NewUserStore(users []*domain.User) *UserStore {
	m := make(map[string]*domain.User, len(users))
	for _, u := range users {
		clone := *u
		m[u.Username] = &clone
	}
	return &UserStore{users: m}
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}
