package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrPreviewNotFound is returned when no journal entry matches.
var ErrPreviewNotFound = errors.New("preview not found")

// QueryOpts configures journal queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Level  string    // exact level match
}

// PreviewRecord is one journaled paper. Config holds the resolved paper
// config as JSON so the journal does not depend on the paper package.
type PreviewRecord struct {
	ID            int
	Sequence      int64
	Timestamp     time.Time
	PreviewID     string
	Level         string
	Title         string
	Seed          int64
	EngineVersion string
	QuestionCount int
	Config        json.RawMessage
}

// PreviewRepo is the append-only journal of generated papers.
type PreviewRepo interface {
	// Append stores a new entry and fills in its ID, Sequence and Timestamp.
	Append(ctx context.Context, rec *PreviewRecord) error

	// Get returns the entry with the given preview ID.
	Get(ctx context.Context, previewID string) (*PreviewRecord, error)

	// Latest returns the most recent entry.
	Latest(ctx context.Context) (*PreviewRecord, error)

	// List returns entries newest first.
	List(ctx context.Context, opts QueryOpts) ([]PreviewRecord, error)

	// Prune deletes all but the keep most recent entries and reports how
	// many were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}
