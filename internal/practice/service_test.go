package practice

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/feedback"
	"github.com/subjunto/subjunto/internal/lexicon"
	"github.com/subjunto/subjunto/internal/llm"
	"github.com/subjunto/subjunto/internal/mastery"
	"github.com/subjunto/subjunto/internal/store"
	"github.com/subjunto/subjunto/internal/testutil"
	"github.com/subjunto/subjunto/internal/validator"
)

type fixture struct {
	svc       *Service
	exercises *testutil.ExerciseRepo
	attempts  *testutil.AttemptRepo
	mastery   *testutil.MasteryRepo
	provider  *llm.MockProvider
}

func newFixture(t *testing.T, provider *llm.MockProvider) *fixture {
	t.Helper()

	attempts := testutil.NewAttemptRepo()
	exercises := testutil.NewExerciseRepo(attempts)
	masteryRepo := testutil.NewMasteryRepo()

	var p llm.Provider
	if provider != nil {
		p = provider
	}

	svc := NewService(
		exercise.New(rand.New(rand.NewSource(11)), exercise.DefaultConfig()),
		exercises,
		attempts,
		mastery.NewService(masteryRepo, nil),
		feedback.NewGenerator(p, time.Second, nil),
		DefaultConfig(),
		nil,
	)
	return &fixture{
		svc:       svc,
		exercises: exercises,
		attempts:  attempts,
		mastery:   masteryRepo,
		provider:  provider,
	}
}

func TestNextExercise_PersistsAndWithholdsAnswer(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.svc.NextExercise(ctx, "u1", exercise.Criteria{Verbs: []string{"hablar"}})
	if err != nil {
		t.Fatalf("NextExercise: %v", err)
	}
	if f.exercises.Count() != 1 {
		t.Errorf("persisted %d exercises, want 1", f.exercises.Count())
	}
	if p.Verb != "hablar" {
		t.Errorf("Verb = %q", p.Verb)
	}

	stored, err := f.exercises.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if strings.Contains(p.Prompt, stored.Answer) {
		t.Errorf("prompt %q leaks the answer", p.Prompt)
	}
}

func TestSubmit_CorrectAnswerFullRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	p, err := f.svc.NextExercise(ctx, "u1", exercise.Criteria{
		Verbs:  []string{"hablar"},
		Tenses: []lexicon.Tense{lexicon.TensePresentSubjunctive},
	})
	if err != nil {
		t.Fatalf("NextExercise: %v", err)
	}
	stored, err := f.exercises.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	res, err := f.svc.Submit(ctx, "u1", p.ID, stored.Answer, 3*time.Second)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !res.Correct {
		t.Errorf("Correct = false for the canonical answer %q", stored.Answer)
	}
	if res.Feedback.Text == "" {
		t.Error("feedback text missing")
	}

	// Attempt persisted.
	attempts, err := f.attempts.ListByUser(ctx, "u1", 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(attempts) != 1 || !attempts[0].IsCorrect {
		t.Errorf("attempts = %+v", attempts)
	}
	if attempts[0].ElapsedMs != 3000 {
		t.Errorf("ElapsedMs = %d, want 3000", attempts[0].ElapsedMs)
	}

	// Mastery updated.
	if res.Mastery == nil || res.Mastery.ConsecutiveCorrect != 1 {
		t.Errorf("Mastery = %+v", res.Mastery)
	}
	if res.Mastery.Interval != mastery.FirstInterval {
		t.Errorf("Interval = %v", res.Mastery.Interval)
	}
}

func TestSubmit_IncorrectAnswerClassifiedAndDemoted(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	ex := &exercise.Exercise{
		ID:            "ex-fixed",
		Verb:          "pensar",
		Tense:         lexicon.TensePresentSubjunctive,
		Person:        lexicon.ThirdSingular,
		TriggerPhrase: "Espero que",
		Prompt:        "Espero que él ___ (pensar)",
		Answer:        "piense",
		RuleNote:      "stem change e→ie",
		Difficulty:    2,
		CreatedAt:     time.Now(),
	}
	if err := f.exercises.Save(ctx, ex); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Build up a streak, then miss.
	for i := 0; i < 3; i++ {
		if _, err := f.svc.Submit(ctx, "u1", ex.ID, "piense", 0); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	res, err := f.svc.Submit(ctx, "u1", ex.ID, "piensa", 0)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if res.Correct {
		t.Fatal("indicative form accepted")
	}
	if res.ErrorKind != validator.KindWrongEnding {
		t.Errorf("ErrorKind = %q, want %q", res.ErrorKind, validator.KindWrongEnding)
	}
	if res.Answer != "piense" {
		t.Errorf("Answer = %q", res.Answer)
	}
	if res.Mastery.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d after miss", res.Mastery.ConsecutiveCorrect)
	}
	if res.Mastery.Interval != mastery.MissInterval {
		t.Errorf("Interval = %v after miss", res.Mastery.Interval)
	}
}

func TestSubmit_UnknownExercise(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Submit(context.Background(), "u1", "missing", "hable", 0)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSubmit_ElaborationAttachedOnMiss(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"pensar swaps e for ie when stressed"}`),
	})
	f := newFixture(t, provider)
	ctx := context.Background()

	ex := &exercise.Exercise{
		ID:        "ex-llm",
		Verb:      "pensar",
		Tense:     lexicon.TensePresentSubjunctive,
		Person:    lexicon.ThirdSingular,
		Prompt:    "Espero que él ___ (pensar)",
		Answer:    "piense",
		CreatedAt: time.Now(),
	}
	if err := f.exercises.Save(ctx, ex); err != nil {
		t.Fatalf("Save: %v", err)
	}

	res, err := f.svc.Submit(ctx, "u1", ex.ID, "pense", 0)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Feedback.Elaboration == "" {
		t.Error("elaboration missing despite healthy provider")
	}

	// The persisted attempt carries the deterministic text, not the
	// provider output.
	attempts, _ := f.attempts.ListByUser(ctx, "u1", 1)
	if len(attempts) != 1 {
		t.Fatalf("attempts = %d", len(attempts))
	}
	if attempts[0].FeedbackText == "" || strings.Contains(attempts[0].FeedbackText, "swaps e for ie") {
		t.Errorf("FeedbackText = %q", attempts[0].FeedbackText)
	}
}

func TestSubmit_ProviderOutageStillRecordsOutcome(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	f := newFixture(t, provider)
	ctx := context.Background()

	ex := &exercise.Exercise{
		ID:        "ex-outage",
		Verb:      "hablar",
		Tense:     lexicon.TensePresentSubjunctive,
		Person:    lexicon.FirstSingular,
		Prompt:    "Espero que yo ___ (hablar)",
		Answer:    "hable",
		CreatedAt: time.Now(),
	}
	if err := f.exercises.Save(ctx, ex); err != nil {
		t.Fatalf("Save: %v", err)
	}

	res, err := f.svc.Submit(ctx, "u1", ex.ID, "hablo", 0)
	if err != nil {
		t.Fatalf("Submit failed on provider outage: %v", err)
	}
	if res.Feedback.Text == "" {
		t.Error("deterministic feedback missing")
	}
	if res.Feedback.Elaboration != "" {
		t.Error("elaboration present despite outage")
	}

	total, _, err := f.attempts.CountByUser(ctx, "u1")
	if err != nil || total != 1 {
		t.Errorf("attempt not recorded: total=%d err=%v", total, err)
	}
}

func TestDueQueue_FreshUserSeesWholeLexicon(t *testing.T) {
	f := newFixture(t, nil)

	due, err := f.svc.DueQueue(context.Background(), "u1")
	if err != nil {
		t.Fatalf("DueQueue: %v", err)
	}
	if len(due) != len(lexicon.Infinitives()) {
		t.Errorf("due = %d verbs, want %d", len(due), len(lexicon.Infinitives()))
	}
}

func TestUserStats(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	ex := &exercise.Exercise{
		ID:        "ex-stats",
		Verb:      "vivir",
		Tense:     lexicon.TensePresentSubjunctive,
		Person:    lexicon.FirstPlural,
		Prompt:    "Es importante que nosotros ___ (vivir)",
		Answer:    "vivamos",
		CreatedAt: time.Now(),
	}
	if err := f.exercises.Save(ctx, ex); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f.svc.Submit(ctx, "u1", ex.ID, "vivamos", 0)
	f.svc.Submit(ctx, "u1", ex.ID, "vivimos", 0)

	stats, err := f.svc.UserStats(ctx, "u1")
	if err != nil {
		t.Fatalf("UserStats: %v", err)
	}
	if stats.TotalAttempts != 2 || stats.CorrectAttempts != 1 {
		t.Errorf("attempts = %d/%d, want 2/1", stats.TotalAttempts, stats.CorrectAttempts)
	}
	if stats.TrackedVerbs != 1 {
		t.Errorf("TrackedVerbs = %d, want 1", stats.TrackedVerbs)
	}
}
