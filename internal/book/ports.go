package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for book storage. Implementations keep
// insertion order.
type Repository interface {
	Insert(ctx context.Context, b Book) error
	List(ctx context.Context, f Filter) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	// Update runs mutate on the stored record and keeps the result only if
	// mutate returns nil.
	Update(ctx context.Context, id string, mutate func(*Book) error) (Book, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// IDGenerator produces unique book ids.
type IDGenerator interface {
	NewID() string
}
