package users

import (
	"context"
	"sync"

	"github.com/mvberkel/tripdiary/internal/common"
	"github.com/mvberkel/tripdiary/internal/storage"
)

// StoreRepository keeps all users in a single whole-file JSON store.
// The mutex is held for the full load-modify-save cycle so concurrent
// requests cannot race past the uniqueness check.
type StoreRepository struct {
	store storage.Store[User]
	mu    sync.Mutex
}

func NewStoreRepository(store storage.Store[User]) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Email == email {
			u := records[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].Email == user.Email {
			return common.ErrAlreadyExists
		}
	}
	records = append(records, *user)
	return r.store.Save(ctx, records)
}

func (r *StoreRepository) Update(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].Email == user.Email {
			records[i] = *user
			return r.store.Save(ctx, records)
		}
	}
	return common.ErrNotFound
}

func (r *StoreRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].Email == email {
			records = append(records[:i], records[i+1:]...)
			return r.store.Save(ctx, records)
		}
	}
	return common.ErrNotFound
}
