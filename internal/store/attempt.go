package store

import (
	"context"
	"fmt"

	"github.com/subjunto/subjunto/ent"
	entattempt "github.com/subjunto/subjunto/ent/attempt"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	row, err := r.client.Attempt.Create().
		SetExerciseID(a.ExerciseID).
		SetUserID(a.UserID).
		SetAnswer(a.Answer).
		SetIsCorrect(a.IsCorrect).
		SetErrorKind(a.ErrorKind).
		SetFeedbackText(a.FeedbackText).
		SetElapsedMs(a.ElapsedMs).
		SetSubmittedAt(a.SubmittedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	a.ID = row.ID
	return nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*Attempt, error) {
	q := r.client.Attempt.Query().
		Where(entattempt.UserID(userID)).
		Order(ent.Desc(entattempt.FieldSubmittedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]*Attempt, len(rows))
	for i, row := range rows {
		out[i] = &Attempt{
			ID:           row.ID,
			ExerciseID:   row.ExerciseID,
			UserID:       row.UserID,
			Answer:       row.Answer,
			IsCorrect:    row.IsCorrect,
			ErrorKind:    row.ErrorKind,
			FeedbackText: row.FeedbackText,
			ElapsedMs:    row.ElapsedMs,
			SubmittedAt:  row.SubmittedAt,
		}
	}
	return out, nil
}

func (r *attemptRepo) CountByUser(ctx context.Context, userID string) (int, int, error) {
	total, err := r.client.Attempt.Query().
		Where(entattempt.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}

	correct, err := r.client.Attempt.Query().
		Where(entattempt.UserID(userID), entattempt.IsCorrect(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct attempts: %w", err)
	}

	return total, correct, nil
}
