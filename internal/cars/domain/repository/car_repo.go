package repository

import (
	"context"
	"errors"

	"emile-auto/internal/cars/domain/model"
)

// ErrInvalidID marks an identifier the store cannot parse. The read paths
// report it as a store failure, the write paths as a client error.
var ErrInvalidID = errors.New("invalid car id")

// CarRepository is the persistence gateway for vehicle listings. It owns no
// business logic; each method is one atomic store operation.
type CarRepository interface {
	// List returns all cars ordered by creation time, newest first.
	// An empty collection yields an empty slice, never an error.
	List(ctx context.Context) ([]model.Car, error)

	// GetByID returns the car or a not-found error for a well-formed
	// absent id. A malformed id wraps ErrInvalidID.
	GetByID(ctx context.Context, id string) (*model.Car, error)

	// Create inserts the car with views forced to 0 and the creation
	// timestamp set at insert time, returning the stored record.
	Create(ctx context.Context, car *model.Car) (*model.Car, error)

	// Replace overwrites the full document, last write wins, and returns
	// the post-replacement record.
	Replace(ctx context.Context, id string, car *model.Car) (*model.Car, error)

	// Delete removes the car by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error

	// IncrementViews atomically adds 1 to the views counter and returns
	// the updated value. Never implemented as read-then-write.
	IncrementViews(ctx context.Context, id string) (int64, error)
}
