package mastery

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// Repo persists mastery records. Update must apply fn as a single atomic
// read-modify-write on the (user, verb) row: two attempts for the same
// pair arriving concurrently race on the record, and a lost update
// silently corrupts the review schedule.
type Repo interface {
	// Get returns the record for a pair, or nil when none exists yet.
	Get(ctx context.Context, userID, verb string) (*Record, error)

	// Update loads or lazily creates the record for a pair, applies fn
	// to it, and persists the result atomically.
	Update(ctx context.Context, userID, verb string, fn func(*Record) error) (*Record, error)

	// ListByUser returns every record for a user.
	ListByUser(ctx context.Context, userID string) ([]*Record, error)
}

// Service manages mastery state across verbs for adaptive practice.
type Service struct {
	repo Repo
	log  *zap.Logger
	now  func() time.Time
}

// NewService creates a mastery service backed by the given repo.
func NewService(repo Repo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

// RecordAttempt folds an attempt outcome into the (user, verb) record
// and returns the updated state.
func (s *Service) RecordAttempt(ctx context.Context, userID, verb string, correct bool) (*Record, error) {
	now := s.now()
	rec, err := s.repo.Update(ctx, userID, verb, func(r *Record) error {
		Apply(r, correct, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("mastery updated",
		zap.String("user", userID),
		zap.String("verb", verb),
		zap.Bool("correct", correct),
		zap.Int("streak", rec.ConsecutiveCorrect),
		zap.Duration("interval", rec.Interval),
	)
	return rec, nil
}

// Get returns the record for a pair, or nil when the verb is unseen.
func (s *Service) Get(ctx context.Context, userID, verb string) (*Record, error) {
	return s.repo.Get(ctx, userID, verb)
}

// All returns every record for a user.
func (s *Service) All(ctx context.Context, userID string) ([]*Record, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Due returns the verbs due for review at asOf, most overdue first.
// Verbs with no record yet are always eligible and sort ahead of tracked
// ones, so new material keeps surfacing.
func (s *Service) Due(ctx context.Context, userID string, asOf time.Time) ([]string, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]*Record, len(recs))
	for _, r := range recs {
		tracked[r.Verb] = r
	}

	var unseen []string
	for _, inf := range lexicon.Infinitives() {
		if _, ok := tracked[inf]; !ok {
			unseen = append(unseen, inf)
		}
	}

	type dueVerb struct {
		verb    string
		overdue time.Duration
	}
	var due []dueVerb
	for _, r := range recs {
		if _, ok := lexicon.Get(r.Verb); !ok {
			continue
		}
		if r.Due(asOf) {
			due = append(due, dueVerb{verb: r.Verb, overdue: r.OverdueBy(asOf)})
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].verb < due[j].verb
	})

	out := make([]string, 0, len(unseen)+len(due))
	out = append(out, unseen...)
	for _, d := range due {
		out = append(out, d.verb)
	}
	return out, nil
}
