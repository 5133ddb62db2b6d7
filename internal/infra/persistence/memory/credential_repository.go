// Package memory provides in-process implementations of the persistence
// interfaces. The credential store lives for the lifetime of the process
// and is discarded on exit; nothing is written to disk.
package memory

import (
	"context"
	"sync"
	"time"

	"cashreg/internal/domain/entity"
	"cashreg/internal/domain/repository"

	"github.com/pkg/errors"
)

// credentialRepository keeps user records in a map keyed by the exact,
// case-sensitive username.
type credentialRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository() repository.CredentialRepository {
	return &credentialRepository{
		users: make(map[string]*entity.User),
	}
}

// Create persists a new user record. Validation happens before this call;
// the duplicate check here is the uniqueness invariant of the store itself.
func (r *credentialRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return errors.Wrapf(repository.ErrUserExists, "username %q", user.Username)
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[user.Username] = &stored

	return nil
}

// FindByUsername retrieves a user by exact username match.
func (r *credentialRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, errors.Wrapf(repository.ErrUserNotFound, "username %q", username)
	}

	found := *user

	return &found, nil
}
