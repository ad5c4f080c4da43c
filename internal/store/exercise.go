package store

import (
	"context"
	"fmt"

	"github.com/subjunto/subjunto/ent"
	entattempt "github.com/subjunto/subjunto/ent/attempt"
	entexercise "github.com/subjunto/subjunto/ent/exercise"
	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/lexicon"
)

type exerciseRepo struct {
	client *ent.Client
}

func (r *exerciseRepo) Save(ctx context.Context, ex *exercise.Exercise) error {
	_, err := r.client.Exercise.Create().
		SetID(ex.ID).
		SetVerb(ex.Verb).
		SetTense(string(ex.Tense)).
		SetPerson(string(ex.Person)).
		SetTriggerPhrase(ex.TriggerPhrase).
		SetPrompt(ex.Prompt).
		SetAnswer(ex.Answer).
		SetAlternates(ex.Alternates).
		SetRuleNote(ex.RuleNote).
		SetDifficulty(ex.Difficulty).
		SetHints(ex.Hints).
		SetCreatedAt(ex.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exercise: %w", err)
	}
	return nil
}

func (r *exerciseRepo) Get(ctx context.Context, id string) (*exercise.Exercise, error) {
	row, err := r.client.Exercise.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("exercise %q: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return exerciseFromRow(row), nil
}

func (r *exerciseRepo) RecentCombos(ctx context.Context, userID string, limit int) ([]exercise.Combo, error) {
	if limit <= 0 {
		return nil, nil
	}

	attempts, err := r.client.Attempt.Query().
		Where(entattempt.UserID(userID)).
		Order(ent.Desc(entattempt.FieldSubmittedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	if len(attempts) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(attempts))
	seen := make(map[string]bool, len(attempts))
	for _, a := range attempts {
		if !seen[a.ExerciseID] {
			seen[a.ExerciseID] = true
			ids = append(ids, a.ExerciseID)
		}
	}

	rows, err := r.client.Exercise.Query().
		Where(entexercise.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent exercises: %w", err)
	}

	combos := make([]exercise.Combo, 0, len(rows))
	for _, row := range rows {
		combos = append(combos, exercise.Combo{
			Verb:   row.Verb,
			Tense:  lexicon.Tense(row.Tense),
			Person: lexicon.Person(row.Person),
		})
	}
	return combos, nil
}

func exerciseFromRow(row *ent.Exercise) *exercise.Exercise {
	return &exercise.Exercise{
		ID:            row.ID,
		Verb:          row.Verb,
		Tense:         lexicon.Tense(row.Tense),
		Person:        lexicon.Person(row.Person),
		TriggerPhrase: row.TriggerPhrase,
		Prompt:        row.Prompt,
		Answer:        row.Answer,
		Alternates:    row.Alternates,
		RuleNote:      row.RuleNote,
		Difficulty:    row.Difficulty,
		Hints:         row.Hints,
		CreatedAt:     row.CreatedAt,
	}
}
