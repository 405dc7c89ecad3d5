package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

const usersKey = "users"

// SnapshotUserRepository keeps the whole registered-users collection
// as a single snapshot, rewritten on every change. The mutex guards
// the read-modify-write cycle against concurrent requests.
type SnapshotUserRepository struct {
	store domain.SnapshotStore

	mu sync.Mutex
}

func NewSnapshotUserRepository(store domain.SnapshotStore) *SnapshotUserRepository {
	return &SnapshotUserRepository{store: store}
}

func (r *SnapshotUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *SnapshotUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(email)
	for _, u := range users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *SnapshotUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	clone := *user
	return r.saveAll(ctx, append(users, &clone))
}

func (r *SnapshotUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == user.ID {
			clone := *user
			users[i] = &clone
			return r.saveAll(ctx, users)
		}
	}
	return domain.ErrUserNotFound
}

func (r *SnapshotUserRepository) loadAll(ctx context.Context) ([]*domain.User, error) {
	data, err := r.store.Load(ctx, usersKey)
	if err != nil {
		if err == domain.ErrSnapshotNotFound {
			return []*domain.User{}, nil
		}
		return nil, err
	}

	var users []*domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Printf("Corrupted users snapshot: %v", err)
		return []*domain.User{}, nil
	}
	return users, nil
}

func (r *SnapshotUserRepository) saveAll(ctx context.Context, users []*domain.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("repository: marshal users failed: %w", err)
	}
	return r.store.Save(ctx, usersKey, data)
}
