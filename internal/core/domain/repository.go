package domain

import (
	"context"
	"errors"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSessionNotFound  = errors.New("workout session not found")
)

// SnapshotStore is the persistence port. Every logical record is a
// keyed, opaque blob read and written whole; writes replace the
// previous value, last writer wins.
type SnapshotStore interface {
	// Load returns the blob stored under key, or ErrSnapshotNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the blob; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ProgressRepository persists per-user progress ledger snapshots.
type ProgressRepository interface {
	Get(ctx context.Context, userID string) (*ProgressSnapshot, error)
	Save(ctx context.Context, userID string, snapshot *ProgressSnapshot) error
}

// StreakRepository persists per-user streak records.
type StreakRepository interface {
	Get(ctx context.Context, userID string) (*StreakRecord, error)
	Save(ctx context.Context, userID string, record *StreakRecord) error
}

// UserRepository persists the registered-users collection as a single
// snapshot and answers lookups against it.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
}

// AuthSessionRepository persists the authenticated-session snapshot.
type AuthSessionRepository interface {
	Get(ctx context.Context, userID string) (*AuthSession, error)
	Save(ctx context.Context, session *AuthSession) error
	Delete(ctx context.Context, userID string) error
}
