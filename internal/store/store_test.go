package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/lexicon"
	"github.com/subjunto/subjunto/internal/llm"
	"github.com/subjunto/subjunto/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testExercise(id string) *exercise.Exercise {
	return &exercise.Exercise{
		ID:            id,
		Verb:          "pensar",
		Tense:         lexicon.TensePresentSubjunctive,
		Person:        lexicon.ThirdSingular,
		TriggerPhrase: "Espero que",
		Prompt:        "Espero que él ___ (pensar)",
		Answer:        "piense",
		Alternates:    nil,
		RuleNote:      "stem change e→ie",
		Difficulty:    2,
		Hints:         []string{"pensar means \"to think\""},
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases, so WAL
		// is only observable with file-backed ones.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLexiconSeeded(t *testing.T) {
	s := openTestStore(t)

	count, err := s.Client().Verb.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count verbs: %v", err)
	}
	if count != len(lexicon.Infinitives()) {
		t.Errorf("verb rows = %d, want %d", count, len(lexicon.Infinitives()))
	}
}

func TestExerciseSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExerciseRepo()
	ctx := context.Background()

	want := testExercise("ex-save-get")
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, want.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Verb != want.Verb || got.Tense != want.Tense || got.Person != want.Person {
		t.Errorf("got %s/%s/%s, want %s/%s/%s",
			got.Verb, got.Tense, got.Person, want.Verb, want.Tense, want.Person)
	}
	if got.Answer != want.Answer {
		t.Errorf("Answer = %q, want %q", got.Answer, want.Answer)
	}
	if len(got.Hints) != len(want.Hints) {
		t.Errorf("Hints = %v, want %v", got.Hints, want.Hints)
	}
}

func TestExerciseGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ExerciseRepo().Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestAttemptAppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.ExerciseRepo().Save(ctx, testExercise("ex-att")); err != nil {
		t.Fatalf("save exercise: %v", err)
	}

	base := time.Now().UTC().Truncate(time.Second)
	attempts := []*Attempt{
		{ExerciseID: "ex-att", UserID: "u1", Answer: "piensa", IsCorrect: false, ErrorKind: "wrong-ending", SubmittedAt: base},
		{ExerciseID: "ex-att", UserID: "u1", Answer: "piense", IsCorrect: true, SubmittedAt: base.Add(time.Minute)},
	}
	for _, a := range attempts {
		if err := s.AttemptRepo().Append(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
		if a.ID == 0 {
			t.Error("Append did not fill in the ID")
		}
	}

	got, err := s.AttemptRepo().ListByUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("listed %d attempts, want 2", len(got))
	}
	// Newest first.
	if !got[0].IsCorrect || got[1].IsCorrect {
		t.Errorf("order wrong: %+v", got)
	}

	total, correct, err := s.AttemptRepo().CountByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 2 || correct != 1 {
		t.Errorf("counts = %d/%d, want 2/1", total, correct)
	}
}

func TestRecentCombos(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.ExerciseRepo().Save(ctx, testExercise("ex-combo")); err != nil {
		t.Fatalf("save exercise: %v", err)
	}
	if err := s.AttemptRepo().Append(ctx, &Attempt{
		ExerciseID:  "ex-combo",
		UserID:      "u1",
		Answer:      "piense",
		IsCorrect:   true,
		SubmittedAt: time.Now(),
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	combos, err := s.ExerciseRepo().RecentCombos(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("recent combos: %v", err)
	}
	want := exercise.Combo{Verb: "pensar", Tense: lexicon.TensePresentSubjunctive, Person: lexicon.ThirdSingular}
	if len(combos) != 1 || combos[0] != want {
		t.Errorf("combos = %v, want [%v]", combos, want)
	}

	// Other users see nothing.
	combos, err = s.ExerciseRepo().RecentCombos(ctx, "u2", 10)
	if err != nil {
		t.Fatalf("recent combos u2: %v", err)
	}
	if len(combos) != 0 {
		t.Errorf("combos for other user = %v, want none", combos)
	}
}

func TestMasteryUpdateCreatesLazily(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec, err := repo.Get(ctx, "u1", "hablar")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record before first attempt")
	}

	now := time.Now().UTC().Truncate(time.Second)
	updated, err := repo.Update(ctx, "u1", "hablar", func(r *mastery.Record) error {
		mastery.Apply(r, true, now)
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ConsecutiveCorrect != 1 {
		t.Errorf("ConsecutiveCorrect = %d, want 1", updated.ConsecutiveCorrect)
	}

	rec, err = repo.Get(ctx, "u1", "hablar")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if rec == nil {
		t.Fatal("record not persisted")
	}
	if rec.Interval != mastery.FirstInterval {
		t.Errorf("Interval = %v, want %v", rec.Interval, mastery.FirstInterval)
	}
	if !rec.NextReview.Equal(now.Add(mastery.FirstInterval)) {
		t.Errorf("NextReview = %v, want %v", rec.NextReview, now.Add(mastery.FirstInterval))
	}
}

func TestMasteryUpdateRoundTrips(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for _, correct := range []bool{true, true, false} {
		if _, err := repo.Update(ctx, "u1", "pensar", func(r *mastery.Record) error {
			mastery.Apply(r, correct, now)
			return nil
		}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	rec, err := repo.Get(ctx, "u1", "pensar")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.TotalAttempts != 3 || rec.CorrectCount != 2 {
		t.Errorf("attempts = %d/%d, want 3/2", rec.TotalAttempts, rec.CorrectCount)
	}
	if rec.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d after miss, want 0", rec.ConsecutiveCorrect)
	}
	if rec.Interval != mastery.MissInterval {
		t.Errorf("Interval = %v, want %v", rec.Interval, mastery.MissInterval)
	}

	recs, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("listed %d records, want 1", len(recs))
	}
}

func TestMasteryUpdateFnErrorRollsBack(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	wantErr := errors.New("boom")
	if _, err := repo.Update(ctx, "u1", "vivir", func(*mastery.Record) error {
		return wantErr
	}); !errors.Is(err, wantErr) {
		t.Fatalf("want fn error, got %v", err)
	}

	rec, err := repo.Get(ctx, "u1", "vivir")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Error("record created despite fn error")
	}
}

func TestLLMEventRecorded(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.LLMEventRepo().RecordLLMRequest(ctx, llm.RequestEvent{
		Provider:      "mock",
		Model:         "mock",
		Purpose:       "feedback-elaboration",
		InputTokens:   12,
		OutputTokens:  34,
		LatencyMs:     56,
		EstimatedCost: 0.0001,
		Success:       true,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}
