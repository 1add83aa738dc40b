package memory

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"address-book/internal/model"
	"address-book/internal/repository"
)

// ErrStoreNotFound возвращается, когда хранилище с таким именем ещё не сохранялось
var ErrStoreNotFound = fmt.Errorf("store not found: %w", fs.ErrNotExist)

var _ repository.ContactRepository = (*repo)(nil)

type repo struct {
	mu     sync.RWMutex
	stores map[string][]model.Record
}

// NewRepository создает новый экземпляр in-memory репозитория на основе map.
// Снимки живут только в памяти процесса.
func NewRepository() repository.ContactRepository {
	return &repo{
		stores: make(map[string][]model.Record),
	}
}

// Save сохраняет копию списка контактов под именем store
func (r *repo) Save(ctx context.Context, store string, records []model.Record) error {
	name := strings.TrimSpace(store)
	if name == "" {
		return &model.PersistenceError{Op: "save", Store: store, Err: repository.ErrEmptyStoreName}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.stores[name] = cloneAll(records)

	return nil
}

// Load возвращает копию сохраненного списка контактов
func (r *repo) Load(ctx context.Context, store string) ([]model.Record, error) {
	name := strings.TrimSpace(store)
	if name == "" {
		return nil, &model.PersistenceError{Op: "load", Store: store, Err: repository.ErrEmptyStoreName}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records, exists := r.stores[name]
	if !exists {
		return nil, &model.PersistenceError{Op: "load", Store: store, Err: ErrStoreNotFound}
	}

	return cloneAll(records), nil
}

func cloneAll(records []model.Record) []model.Record {
	out := make([]model.Record, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out
}
