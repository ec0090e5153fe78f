// Package store provides persistence for generated diagrams.
//
// The server keeps each generated diagram - source process, computed
// layout, and metadata - so clients can reload and re-export it later.
// Two backends implement the [Store] interface:
//
//   - file: JSON files in a directory, for CLI and single-instance use
//   - mongo: MongoDB collection, for production deployments
//
// # Usage
//
// Create a store and save a diagram:
//
//	s, err := store.NewFileStore("")  // uses ~/.local/share/flowsketch/diagrams/
//	if err != nil {
//	    return err
//	}
//	d := store.NewDiagram("order process", process, l)
//	if err := s.Put(ctx, d); err != nil {
//	    return err
//	}
//
// Retrieve it:
//
//	d, err := s.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // no such diagram
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
	"github.com/flowsketch/flowsketch/pkg/layout"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a diagram does not exist.
	ErrNotFound = errors.New("diagram not found")
)

// Diagram is one stored diagram: the source process, its computed layout,
// and bookkeeping metadata.
type Diagram struct {
	ID        string         `json:"id" bson:"_id"`
	Name      string         `json:"name,omitempty" bson:"name,omitempty"`
	Process   bpmn.Process   `json:"process" bson:"process"`
	Layout    *layout.Layout `json:"layout,omitempty" bson:"layout,omitempty"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// NewDiagram creates a diagram record with a fresh UUID and timestamps.
func NewDiagram(name string, p bpmn.Process, l *layout.Layout) *Diagram {
	now := time.Now().UTC()
	return &Diagram{
		ID:        uuid.NewString(),
		Name:      name,
		Process:   p,
		Layout:    l,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for diagram storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a diagram by ID.
	// Returns ErrNotFound if no such diagram exists.
	Get(ctx context.Context, id string) (*Diagram, error)

	// Put stores a diagram, replacing any existing record with the same
	// ID. UpdatedAt is refreshed by the store.
	Put(ctx context.Context, d *Diagram) error

	// Delete removes a diagram. Deleting a missing diagram is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored diagrams.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
