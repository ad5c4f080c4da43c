package store

import (
	"context"
	"errors"
	"time"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/llm"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// ExerciseRepo persists generated exercises.
type ExerciseRepo interface {
	// Save stores a new exercise. Exercises are immutable once saved.
	Save(ctx context.Context, ex *exercise.Exercise) error

	// Get returns an exercise by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*exercise.Exercise, error)

	// RecentCombos returns the (verb, tense, person) combos of the user's
	// most recent attempts, for recently-seen exclusion.
	RecentCombos(ctx context.Context, userID string, limit int) ([]exercise.Combo, error)
}

// Attempt is one submitted answer. Append-only: corrections are new
// attempts, never edits.
type Attempt struct {
	ID           int
	ExerciseID   string
	UserID       string
	Answer       string
	IsCorrect    bool
	ErrorKind    string
	FeedbackText string
	ElapsedMs    int64
	SubmittedAt  time.Time
}

// AttemptRepo appends and reads attempts.
type AttemptRepo interface {
	// Append stores a new attempt and fills in its ID.
	Append(ctx context.Context, a *Attempt) error

	// ListByUser returns the user's attempts, newest first.
	// limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*Attempt, error)

	// CountByUser returns total and correct attempt counts.
	CountByUser(ctx context.Context, userID string) (total, correct int, err error)
}

// LLMEventRepo records provider calls; it satisfies llm.EventRecorder.
type LLMEventRepo interface {
	llm.EventRecorder
}
