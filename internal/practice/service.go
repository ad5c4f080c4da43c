// Package practice orchestrates one full exercise round trip: generate
// and persist an exercise, validate the submitted answer against the
// live engine, append the attempt, update mastery, and attach feedback.
package practice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/subjunto/subjunto/internal/conjugator"
	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/feedback"
	"github.com/subjunto/subjunto/internal/mastery"
	"github.com/subjunto/subjunto/internal/store"
	"github.com/subjunto/subjunto/internal/validator"
)

// Config tunes the practice loop.
type Config struct {
	// AcceptAccentless widens answer matching to ignore diacritics.
	AcceptAccentless bool

	// RecentWindow is how many recent attempts are excluded from
	// regeneration.
	RecentWindow int
}

// DefaultConfig returns the recommended practice configuration.
func DefaultConfig() Config {
	return Config{RecentWindow: 10}
}

// Service wires the generator, validator, scheduler and feedback into
// the user-facing operations.
type Service struct {
	generator *exercise.Generator
	exercises store.ExerciseRepo
	attempts  store.AttemptRepo
	mastery   *mastery.Service
	feedback  *feedback.Generator
	cfg       Config
	log       *zap.Logger
	now       func() time.Time
}

// NewService creates a practice service.
func NewService(
	gen *exercise.Generator,
	exercises store.ExerciseRepo,
	attempts store.AttemptRepo,
	masterySvc *mastery.Service,
	fb *feedback.Generator,
	cfg Config,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.RecentWindow <= 0 {
		cfg.RecentWindow = DefaultConfig().RecentWindow
	}
	return &Service{
		generator: gen,
		exercises: exercises,
		attempts:  attempts,
		mastery:   masterySvc,
		feedback:  fb,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Prompt is the learner-facing view of an exercise. The answer and
// alternates stay server-side until submission.
type Prompt struct {
	ID            string
	Verb          string
	Tense         string
	Person        string
	TriggerPhrase string
	Prompt        string
	Difficulty    int
	Hints         []string
}

// NextExercise generates, persists, and returns the next exercise for a
// user. Adaptive mode: verbs due for review are weighted heavier unless
// the criteria already pin a due list.
func (s *Service) NextExercise(ctx context.Context, userID string, criteria exercise.Criteria) (*Prompt, error) {
	if len(criteria.Due) == 0 {
		due, err := s.mastery.Due(ctx, userID, s.now())
		if err != nil {
			return nil, fmt.Errorf("due queue: %w", err)
		}
		criteria.Due = due
	}

	if len(criteria.Recent) == 0 {
		recent, err := s.exercises.RecentCombos(ctx, userID, s.cfg.RecentWindow)
		if err != nil {
			return nil, fmt.Errorf("recent combos: %w", err)
		}
		criteria.Recent = recent
	}

	ex, err := s.generator.Generate(criteria)
	if err != nil {
		return nil, fmt.Errorf("generate exercise: %w", err)
	}
	if err := s.exercises.Save(ctx, ex); err != nil {
		return nil, fmt.Errorf("persist exercise: %w", err)
	}

	s.log.Debug("exercise generated",
		zap.String("user", userID),
		zap.String("exercise", ex.ID),
		zap.String("verb", ex.Verb),
		zap.String("tense", string(ex.Tense)),
	)

	return &Prompt{
		ID:            ex.ID,
		Verb:          ex.Verb,
		Tense:         string(ex.Tense),
		Person:        string(ex.Person),
		TriggerPhrase: ex.TriggerPhrase,
		Prompt:        ex.Prompt,
		Difficulty:    ex.Difficulty,
		Hints:         ex.Hints,
	}, nil
}

// Result is the outcome of a submission.
type Result struct {
	Correct    bool
	ErrorKind  validator.ErrorKind
	Answer     string
	Alternates []string
	Feedback   feedback.Feedback
	Mastery    *mastery.Record
}

// Submit validates an answer, records the attempt and the mastery
// update synchronously, then attaches feedback. Elaborated feedback is
// best-effort: provider failure or timeout degrades to the rule-grounded
// text and never blocks the recorded outcome. elapsed is how long the
// learner took, zero when the caller did not measure it.
func (s *Service) Submit(ctx context.Context, userID, exerciseID, answer string, elapsed time.Duration) (*Result, error) {
	ex, err := s.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	live, err := conjugator.Conjugate(ex.Verb, ex.Tense, ex.Person)
	if err != nil {
		return nil, fmt.Errorf("conjugate %s: %w", ex.Verb, err)
	}
	if live.Canonical != ex.Answer {
		// The stored answer must always equal live engine output; a
		// mismatch means the lexicon changed under a stored exercise.
		s.log.Warn("stored answer drifted from engine output",
			zap.String("exercise", ex.ID),
			zap.String("stored", ex.Answer),
			zap.String("engine", live.Canonical),
		)
	}

	verdict := validator.Validate(answer, live, validator.Options{
		AcceptAccentless: s.cfg.AcceptAccentless,
	})

	// Attempt and mastery are recorded before any provider call so
	// elaboration latency can never delay or lose the outcome.
	attempt := &store.Attempt{
		ExerciseID:   ex.ID,
		UserID:       userID,
		Answer:       answer,
		IsCorrect:    verdict.IsCorrect,
		ErrorKind:    string(verdict.ErrorKind),
		FeedbackText: feedback.Explain(verdict, ex),
		ElapsedMs:    elapsed.Milliseconds(),
		SubmittedAt:  s.now(),
	}
	if err := s.attempts.Append(ctx, attempt); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	rec, err := s.mastery.RecordAttempt(ctx, userID, ex.Verb, verdict.IsCorrect)
	if err != nil {
		return nil, fmt.Errorf("update mastery: %w", err)
	}

	fb := s.feedback.Generate(ctx, answer, verdict, ex)

	return &Result{
		Correct:    verdict.IsCorrect,
		ErrorKind:  verdict.ErrorKind,
		Answer:     live.Canonical,
		Alternates: live.Alternates,
		Feedback:   fb,
		Mastery:    rec,
	}, nil
}

// DueQueue returns the verbs due for review, most overdue first.
func (s *Service) DueQueue(ctx context.Context, userID string) ([]string, error) {
	return s.mastery.Due(ctx, userID, s.now())
}

// Stats summarizes a user's history.
type Stats struct {
	TotalAttempts   int
	CorrectAttempts int
	TrackedVerbs    int
	Records         []*mastery.Record
}

// UserStats aggregates attempt counts and mastery records for a user.
func (s *Service) UserStats(ctx context.Context, userID string) (*Stats, error) {
	total, correct, err := s.attempts.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}
	recs, err := s.mastery.All(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list mastery: %w", err)
	}
	return &Stats{
		TotalAttempts:   total,
		CorrectAttempts: correct,
		TrackedVerbs:    len(recs),
		Records:         recs,
	}, nil
}
