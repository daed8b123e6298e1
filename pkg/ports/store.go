package ports

import (
	"context"

	"github.com/aretw0/tmsim/pkg/domain"
)

// ResultStore defines the interface for persisting simulation records.
type ResultStore interface {
	// Save persists the record under rec.ID, replacing any previous record.
	Save(ctx context.Context, rec *domain.Record) error

	// Load retrieves the record for a given ID.
	// Returns domain.ErrRecordNotFound if the record does not exist.
	Load(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes the record for a given ID. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored records.
	List(ctx context.Context) ([]string, error)
}
