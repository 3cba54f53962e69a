package trips

import (
	"context"
	"sync"

	"github.com/mvberkel/tripdiary/internal/common"
	"github.com/mvberkel/tripdiary/internal/storage"
)

// StoreRepository keeps all trips in a single whole-file JSON store, with a
// mutex held across each load-modify-save cycle.
type StoreRepository struct {
	store storage.Store[Trip]
	mu    sync.Mutex
}

func NewStoreRepository(store storage.Store[Trip]) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) List(ctx context.Context) ([]Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Load(ctx)
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			t := records[i]
			return &t, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) Create(ctx context.Context, trip *Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID == trip.ID {
			return common.ErrAlreadyExists
		}
	}
	records = append(records, *trip)
	return r.store.Save(ctx, records)
}

func (r *StoreRepository) AppendEntry(ctx context.Context, tripID string, entry DiaryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID != tripID {
			continue
		}
		for _, e := range records[i].Entries {
			if e.EntryID == entry.EntryID {
				return common.ErrAlreadyExists
			}
		}
		records[i].Entries = append(records[i].Entries, entry)
		return r.store.Save(ctx, records)
	}
	return common.ErrNotFound
}
