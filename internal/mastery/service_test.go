package mastery

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// memRepo is an in-memory Repo with the same atomicity contract as the
// persistent one.
type memRepo struct {
	mu   sync.Mutex
	recs map[string]map[string]*Record
}

func newMemRepo() *memRepo {
	return &memRepo{recs: make(map[string]map[string]*Record)}
}

func (m *memRepo) Get(_ context.Context, userID, verb string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.recs[userID][verb]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRepo) Update(_ context.Context, userID, verb string, fn func(*Record) error) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recs[userID] == nil {
		m.recs[userID] = make(map[string]*Record)
	}
	r, ok := m.recs[userID][verb]
	if !ok {
		r = &Record{UserID: userID, Verb: verb}
		m.recs[userID][verb] = r
	}
	if err := fn(r); err != nil {
		return nil, err
	}
	cp := *r
	return &cp, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID string) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Record
	for _, r := range m.recs[userID] {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func TestApply_IntervalGrowsAndCaps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &Record{UserID: "u1", Verb: "hablar"}

	var prev time.Duration
	for i := 0; i < 12; i++ {
		Apply(rec, true, now)
		if rec.Interval < prev {
			t.Fatalf("interval shrank on success: %v -> %v", prev, rec.Interval)
		}
		if rec.Interval > MaxInterval {
			t.Fatalf("interval %v exceeds cap", rec.Interval)
		}
		prev = rec.Interval
	}

	if rec.Interval != MaxInterval {
		t.Errorf("after 12 successes interval = %v, want cap %v", rec.Interval, MaxInterval)
	}
	if rec.ConsecutiveCorrect != 12 {
		t.Errorf("ConsecutiveCorrect = %d, want 12", rec.ConsecutiveCorrect)
	}
}

func TestApply_FirstCorrectEarnsADay(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &Record{UserID: "u1", Verb: "hablar"}

	Apply(rec, true, now)
	if rec.Interval != FirstInterval {
		t.Errorf("Interval = %v, want %v", rec.Interval, FirstInterval)
	}
	if !rec.NextReview.Equal(now.Add(FirstInterval)) {
		t.Errorf("NextReview = %v, want %v", rec.NextReview, now.Add(FirstInterval))
	}
}

func TestApply_MissResetsRegardlessOfMastery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &Record{UserID: "u1", Verb: "hablar"}

	for i := 0; i < 8; i++ {
		Apply(rec, true, now)
	}
	Apply(rec, false, now)

	if rec.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d after miss, want 0", rec.ConsecutiveCorrect)
	}
	if rec.Interval != MissInterval {
		t.Errorf("Interval = %v after miss, want %v", rec.Interval, MissInterval)
	}
	if rec.LastOutcome != OutcomeIncorrect {
		t.Errorf("LastOutcome = %q", rec.LastOutcome)
	}

	// Recovery restarts from the first interval, not the old streak.
	Apply(rec, true, now)
	if rec.Interval != FirstInterval {
		t.Errorf("Interval after recovery = %v, want %v", rec.Interval, FirstInterval)
	}
}

func TestRecordAttempt_CountsAttempts(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()

	if _, err := svc.RecordAttempt(ctx, "u1", "pensar", true); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	rec, err := svc.RecordAttempt(ctx, "u1", "pensar", false)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if rec.TotalAttempts != 2 {
		t.Errorf("TotalAttempts = %d, want 2", rec.TotalAttempts)
	}
	if rec.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", rec.CorrectCount)
	}
	if got := rec.Accuracy(); got != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", got)
	}
}

func TestDue_UnseenVerbsAlwaysEligible(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()
	asOf := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	due, err := svc.Due(ctx, "u1", asOf)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != len(lexicon.Infinitives()) {
		t.Fatalf("fresh user sees %d due verbs, want the whole lexicon (%d)", len(due), len(lexicon.Infinitives()))
	}
}

func TestDue_MostOverdueFirst(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()
	asOf := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Seed every lexicon verb so no unseen entries interfere, then make
	// two of them overdue by different amounts and one not yet due.
	for _, inf := range lexicon.Infinitives() {
		inf := inf
		if _, err := repo.Update(ctx, "u1", inf, func(r *Record) error {
			r.Interval = FirstInterval
			r.NextReview = asOf.Add(time.Hour)
			return nil
		}); err != nil {
			t.Fatalf("seed %s: %v", inf, err)
		}
	}
	set := func(verb string, next time.Time) {
		if _, err := repo.Update(ctx, "u1", verb, func(r *Record) error {
			r.NextReview = next
			return nil
		}); err != nil {
			t.Fatalf("set %s: %v", verb, err)
		}
	}
	set("hablar", asOf.Add(-48*time.Hour))
	set("comer", asOf.Add(-2*time.Hour))

	due, err := svc.Due(ctx, "u1", asOf)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("due = %v, want exactly the two overdue verbs", due)
	}
	if due[0] != "hablar" || due[1] != "comer" {
		t.Errorf("due = %v, want [hablar comer]", due)
	}
}

func TestRecordAttempt_ConcurrentSamePair(t *testing.T) {
	svc := NewService(newMemRepo(), nil)
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RecordAttempt(ctx, "u1", "vivir", true); err != nil {
				t.Errorf("RecordAttempt: %v", err)
			}
		}()
	}
	wg.Wait()

	rec, err := svc.Get(ctx, "u1", "vivir")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.TotalAttempts != n {
		t.Errorf("TotalAttempts = %d after %d concurrent updates, want %d", rec.TotalAttempts, n, n)
	}
}
