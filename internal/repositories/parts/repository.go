// Package parts provides the interface for part catalog persistence
package parts

//go:generate mockgen -destination=mock/mock_repository.go -package=partsmock github.com/runeforge/codex-api/internal/repositories/parts Repository

import (
	"context"

	"github.com/runeforge/codex-api/internal/entities/forge"
)

// Repository defines the interface for part catalog persistence. Catalog
// entries are authored by the admin editors; the derivation engine only ever
// consumes the immutable snapshot returned by ListSnapshot.
type Repository interface {
	// Get retrieves a single catalog entry by id
	// Returns errors.InvalidArgument for an empty id
	// Returns errors.NotFound if the entry does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put creates or replaces a catalog entry
	// Returns errors.InvalidArgument for entries without an id or name
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete removes a catalog entry
	// Returns errors.NotFound if the entry does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListSnapshot returns the full catalog as one snapshot slice,
	// optionally filtered by part kind
	ListSnapshot(ctx context.Context, input ListSnapshotInput) (*ListSnapshotOutput, error)
}

// GetInput defines the input for getting a catalog entry
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a catalog entry
type GetOutput struct {
	Entry *forge.PartCatalogEntry
}

// PutInput defines the input for storing a catalog entry
type PutInput struct {
	Entry *forge.PartCatalogEntry
}

// PutOutput defines the output for storing a catalog entry
type PutOutput struct {
	Entry *forge.PartCatalogEntry
}

// DeleteInput defines the input for deleting a catalog entry
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a catalog entry
type DeleteOutput struct{}

// ListSnapshotInput defines the input for listing the catalog
type ListSnapshotInput struct {
	// Kind filters the snapshot to one part kind; empty means all kinds
	Kind forge.PartKind
}

// ListSnapshotOutput defines the output for listing the catalog
type ListSnapshotOutput struct {
	Entries []forge.PartCatalogEntry
}
