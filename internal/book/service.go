package book

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
	ids  IDGenerator
	now  func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the time source used for insertedAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new book service.
func NewService(repo Repository, ids IDGenerator, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		ids:  ids,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates p, stores a new book and returns its id.
func (s *Service) Create(ctx context.Context, p Payload) (string, error) {
	if err := Validate(p, ModeCreate); err != nil {
		return "", err
	}

	b := newBook(s.ids.NewID(), p, s.now())
	if err := s.repo.Insert(ctx, b); err != nil {
		return "", fmt.Errorf("insert book: %w", err)
	}

	if _, err := s.repo.Get(ctx, b.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotPersisted
		}
		return "", fmt.Errorf("read back book: %w", err)
	}
	return b.ID, nil
}

// List returns the summaries of books matching f in insertion order.
func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, b.Summarize())
	}
	return out, nil
}

// Get returns the full record for id.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the present fields of p over the book with the given id.
// The payload is validated before the id is looked up. Finished keeps the
// value computed at creation.
func (s *Service) Update(ctx context.Context, id string, p Payload) error {
	if err := Validate(p, ModeUpdate); err != nil {
		return err
	}

	_, err := s.repo.Update(ctx, id, func(b *Book) error {
		p.applyTo(b)
		b.UpdatedAt = s.now()
		return checkInvariant(*b, ModeUpdate)
	})
	return err
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count returns the number of stored books.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
