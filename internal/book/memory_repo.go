package book

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// MemoryRepository keeps books in an ordered slice guarded by a single lock.
type MemoryRepository struct {
	mu    sync.RWMutex
	books []Book
	log   zerolog.Logger
}

func NewMemoryRepository(log zerolog.Logger) *MemoryRepository {
	return &MemoryRepository{log: log}
}

func (r *MemoryRepository) Insert(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(b.ID) >= 0 {
		return ErrDuplicateID
	}
	r.books = append(r.books, b)
	r.log.Debug().Str("book_id", b.ID).Int("total", len(r.books)).Msg("book inserted")
	return nil
}

func (r *MemoryRepository) List(_ context.Context, f Filter) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		r.log.Warn().Str("book_id", id).Msg("book not found")
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, mutate func(*Book) error) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.log.Warn().Str("book_id", id).Msg("book not found")
		return Book{}, ErrNotFound
	}

	updated := r.books[i]
	if err := mutate(&updated); err != nil {
		return Book{}, err
	}
	updated.ID = id
	r.books[i] = updated
	r.log.Debug().Str("book_id", id).Msg("book updated")
	return updated, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.log.Warn().Str("book_id", id).Msg("book not found")
		return ErrNotFound
	}
	r.books = slices.Delete(r.books, i, i+1)
	r.log.Debug().Str("book_id", id).Int("total", len(r.books)).Msg("book deleted")
	return nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}

// indexOf must be called with mu held.
func (r *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ID == id })
}
