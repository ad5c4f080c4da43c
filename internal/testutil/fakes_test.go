package testutil

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/lexicon"
	"github.com/subjunto/subjunto/internal/mastery"
	"github.com/subjunto/subjunto/internal/store"
)

func sampleExercise(id string) *exercise.Exercise {
	return &exercise.Exercise{
		ID:     id,
		Verb:   "pensar",
		Tense:  lexicon.TensePresentSubjunctive,
		Person: lexicon.ThirdSingular,
		Answer: "piense",
	}
}

func TestExerciseRepoReturnsCopies(t *testing.T) {
	repo := NewExerciseRepo(nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleExercise("ex-1")))

	got, err := repo.Get(ctx, "ex-1")
	require.NoError(t, err)
	got.Answer = "mutated"

	again, err := repo.Get(ctx, "ex-1")
	require.NoError(t, err)
	assert.Equal(t, "piense", again.Answer, "stored exercise must be isolated from callers")
}

func TestExerciseRepoRejectsDuplicates(t *testing.T) {
	repo := NewExerciseRepo(nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleExercise("ex-1")))
	assert.Error(t, repo.Save(ctx, sampleExercise("ex-1")))
	assert.Equal(t, 1, repo.Count())
}

func TestExerciseRepoGetMissing(t *testing.T) {
	repo := NewExerciseRepo(nil)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecentCombosFollowsAttemptOrder(t *testing.T) {
	attempts := NewAttemptRepo()
	repo := NewExerciseRepo(attempts)
	ctx := context.Background()

	first := sampleExercise("ex-1")
	second := sampleExercise("ex-2")
	second.Verb = "vivir"
	second.Person = lexicon.FirstSingular
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	for _, id := range []string{"ex-1", "ex-2"} {
		require.NoError(t, attempts.Append(ctx, &store.Attempt{
			ExerciseID:  id,
			UserID:      "u1",
			SubmittedAt: time.Now(),
		}))
	}

	combos, err := repo.RecentCombos(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, combos, 2)
	assert.Equal(t, "vivir", combos[0].Verb, "newest attempt first")
	assert.Equal(t, "pensar", combos[1].Verb)

	combos, err = repo.RecentCombos(ctx, "u2", 10)
	require.NoError(t, err)
	assert.Empty(t, combos)
}

func TestAttemptRepoAssignsIDs(t *testing.T) {
	repo := NewAttemptRepo()
	ctx := context.Background()

	a := &store.Attempt{ExerciseID: "ex-1", UserID: "u1", IsCorrect: true}
	b := &store.Attempt{ExerciseID: "ex-1", UserID: "u1"}
	require.NoError(t, repo.Append(ctx, a))
	require.NoError(t, repo.Append(ctx, b))
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	total, correct, err := repo.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, correct)
}

func TestMasteryRepoUpdateIsAtomic(t *testing.T) {
	repo := NewMasteryRepo()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "u1", "pensar", func(r *mastery.Record) error {
				r.TotalAttempts++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rec, err := repo.Get(ctx, "u1", "pensar")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, workers, rec.TotalAttempts)
}

func TestMasteryRepoUpdateFnErrorDiscardsChanges(t *testing.T) {
	repo := NewMasteryRepo()
	ctx := context.Background()

	boom := errors.New("boom")
	_, err := repo.Update(ctx, "u1", "vivir", func(r *mastery.Record) error {
		r.TotalAttempts = 99
		return boom
	})
	require.ErrorIs(t, err, boom)

	rec, err := repo.Get(ctx, "u1", "vivir")
	require.NoError(t, err)
	assert.Nil(t, rec, "failed update must not create a record")
}

func TestMasteryRepoGetUnseenReturnsNil(t *testing.T) {
	repo := NewMasteryRepo()

	rec, err := repo.Get(context.Background(), "u1", "hablar")
	require.NoError(t, err)
	assert.Nil(t, rec)
}
