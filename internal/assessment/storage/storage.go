// Package storage defines the append-only persistence contract for
// assessment result records.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/securelups/securelups.co/internal/assessment/form"
)

// ErrNotFound indicates a requested result record is missing.
var ErrNotFound = errors.New("result not found")

// Record is one persisted assessment: the full answer snapshot, the derived
// risk score, and the store-assigned identity. Records are immutable; there
// is no update or delete path.
type Record struct {
	ID        string
	Answers   form.AnswerSet
	Score     int
	CreatedAt time.Time
}

// ResultStore persists assessment results.
//
// GetAll is an unbounded scan ordered newest-first; acceptable at this
// scale and deliberately unpaginated.
type ResultStore interface {
	// Create persists a new record with a store-generated id and creation
	// timestamp and returns the id. Every call produces a new record.
	Create(ctx context.Context, answers form.AnswerSet, score int) (string, error)
	// GetByID returns the record for id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (Record, error)
	// GetByEmail returns records submitted with the contact email,
	// newest first.
	GetByEmail(ctx context.Context, email string) ([]Record, error)
	// GetAll returns every record, newest first.
	GetAll(ctx context.Context) ([]Record, error)
	Close() error
}
