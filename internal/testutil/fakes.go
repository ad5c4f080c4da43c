// Package testutil provides in-memory repo fakes for service-level
// tests. They honor the same contracts as the SQLite-backed repos,
// including atomic mastery updates.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/llm"
	"github.com/subjunto/subjunto/internal/mastery"
	"github.com/subjunto/subjunto/internal/store"
)

// ExerciseRepo is an in-memory store.ExerciseRepo.
type ExerciseRepo struct {
	mu        sync.Mutex
	exercises map[string]*exercise.Exercise
	// order of saves per user is reconstructed from the attempt fake, so
	// RecentCombos needs a link to it.
	attempts *AttemptRepo
}

// NewExerciseRepo creates a fake exercise repo. attempts may be nil when
// RecentCombos is not exercised.
func NewExerciseRepo(attempts *AttemptRepo) *ExerciseRepo {
	return &ExerciseRepo{
		exercises: make(map[string]*exercise.Exercise),
		attempts:  attempts,
	}
}

func (r *ExerciseRepo) Save(_ context.Context, ex *exercise.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exercises[ex.ID]; ok {
		return fmt.Errorf("duplicate exercise id %s", ex.ID)
	}
	cp := *ex
	r.exercises[ex.ID] = &cp
	return nil
}

func (r *ExerciseRepo) Get(_ context.Context, id string) (*exercise.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ex, ok := r.exercises[id]
	if !ok {
		return nil, fmt.Errorf("exercise %q: %w", id, store.ErrNotFound)
	}
	cp := *ex
	return &cp, nil
}

func (r *ExerciseRepo) RecentCombos(_ context.Context, userID string, limit int) ([]exercise.Combo, error) {
	if r.attempts == nil || limit <= 0 {
		return nil, nil
	}

	r.attempts.mu.Lock()
	recent := make([]*store.Attempt, 0, limit)
	for i := len(r.attempts.attempts) - 1; i >= 0 && len(recent) < limit; i-- {
		if r.attempts.attempts[i].UserID == userID {
			recent = append(recent, r.attempts.attempts[i])
		}
	}
	r.attempts.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	var combos []exercise.Combo
	for _, a := range recent {
		if ex, ok := r.exercises[a.ExerciseID]; ok {
			combos = append(combos, exercise.Combo{Verb: ex.Verb, Tense: ex.Tense, Person: ex.Person})
		}
	}
	return combos, nil
}

// Count returns the number of stored exercises.
func (r *ExerciseRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.exercises)
}

// AttemptRepo is an in-memory store.AttemptRepo.
type AttemptRepo struct {
	mu       sync.Mutex
	attempts []*store.Attempt
	nextID   int
}

// NewAttemptRepo creates a fake attempt repo.
func NewAttemptRepo() *AttemptRepo {
	return &AttemptRepo{nextID: 1}
}

func (r *AttemptRepo) Append(_ context.Context, a *store.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.attempts = append(r.attempts, &cp)
	return nil
}

func (r *AttemptRepo) ListByUser(_ context.Context, userID string, limit int) ([]*store.Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Attempt
	for i := len(r.attempts) - 1; i >= 0; i-- {
		if r.attempts[i].UserID != userID {
			continue
		}
		cp := *r.attempts[i]
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *AttemptRepo) CountByUser(_ context.Context, userID string) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total, correct int
	for _, a := range r.attempts {
		if a.UserID != userID {
			continue
		}
		total++
		if a.IsCorrect {
			correct++
		}
	}
	return total, correct, nil
}

// MasteryRepo is an in-memory mastery.Repo.
type MasteryRepo struct {
	mu   sync.Mutex
	recs map[string]map[string]*mastery.Record
}

// NewMasteryRepo creates a fake mastery repo.
func NewMasteryRepo() *MasteryRepo {
	return &MasteryRepo{recs: make(map[string]map[string]*mastery.Record)}
}

func (r *MasteryRepo) Get(_ context.Context, userID, verb string) (*mastery.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recs[userID][verb]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *MasteryRepo) Update(_ context.Context, userID, verb string, fn func(*mastery.Record) error) (*mastery.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recs[userID] == nil {
		r.recs[userID] = make(map[string]*mastery.Record)
	}
	rec, ok := r.recs[userID][verb]
	if !ok {
		rec = &mastery.Record{UserID: userID, Verb: verb}
	}
	cp := *rec
	if err := fn(&cp); err != nil {
		return nil, err
	}
	r.recs[userID][verb] = &cp
	out := cp
	return &out, nil
}

func (r *MasteryRepo) ListByUser(_ context.Context, userID string) ([]*mastery.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*mastery.Record
	for _, rec := range r.recs[userID] {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

// LLMEventRepo is an in-memory llm.EventRecorder.
type LLMEventRepo struct {
	mu     sync.Mutex
	Events []llm.RequestEvent
}

// NewLLMEventRepo creates a fake event recorder.
func NewLLMEventRepo() *LLMEventRepo {
	return &LLMEventRepo{}
}

func (r *LLMEventRepo) RecordLLMRequest(_ context.Context, ev llm.RequestEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
	return nil
}
