package store

import (
	"context"
	"fmt"
	"time"

	"github.com/subjunto/subjunto/ent"
	"github.com/subjunto/subjunto/ent/masteryrecord"
	"github.com/subjunto/subjunto/internal/mastery"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, userID, verb string) (*mastery.Record, error) {
	row, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.UserID(userID), masteryrecord.Verb(verb)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mastery record: %w", err)
	}
	return recordFromRow(row), nil
}

// Update applies fn inside a transaction so the read-modify-write on one
// (user, verb) row is atomic. With WAL and busy_timeout set, concurrent
// writers serialize instead of failing.
func (r *masteryRepo) Update(ctx context.Context, userID, verb string, fn func(*mastery.Record) error) (*mastery.Record, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	row, err := tx.MasteryRecord.Query().
		Where(masteryrecord.UserID(userID), masteryrecord.Verb(verb)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		tx.Rollback()
		return nil, fmt.Errorf("query mastery record: %w", err)
	}

	var rec *mastery.Record
	if row != nil {
		rec = recordFromRow(row)
	} else {
		rec = &mastery.Record{UserID: userID, Verb: verb}
	}

	if err := fn(rec); err != nil {
		tx.Rollback()
		return nil, err
	}

	if row != nil {
		_, err = tx.MasteryRecord.UpdateOne(row).
			SetConsecutiveCorrect(rec.ConsecutiveCorrect).
			SetTotalAttempts(rec.TotalAttempts).
			SetCorrectCount(rec.CorrectCount).
			SetIntervalNs(int64(rec.Interval)).
			SetNextReview(rec.NextReview).
			SetLastOutcome(string(rec.LastOutcome)).
			SetLastPracticed(rec.LastPracticed).
			Save(ctx)
	} else {
		_, err = tx.MasteryRecord.Create().
			SetUserID(userID).
			SetVerb(verb).
			SetConsecutiveCorrect(rec.ConsecutiveCorrect).
			SetTotalAttempts(rec.TotalAttempts).
			SetCorrectCount(rec.CorrectCount).
			SetIntervalNs(int64(rec.Interval)).
			SetNextReview(rec.NextReview).
			SetLastOutcome(string(rec.LastOutcome)).
			SetLastPracticed(rec.LastPracticed).
			Save(ctx)
	}
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save mastery record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit mastery update: %w", err)
	}
	return rec, nil
}

func (r *masteryRepo) ListByUser(ctx context.Context, userID string) ([]*mastery.Record, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}

	out := make([]*mastery.Record, len(rows))
	for i, row := range rows {
		out[i] = recordFromRow(row)
	}
	return out, nil
}

func recordFromRow(row *ent.MasteryRecord) *mastery.Record {
	return &mastery.Record{
		UserID:             row.UserID,
		Verb:               row.Verb,
		ConsecutiveCorrect: row.ConsecutiveCorrect,
		TotalAttempts:      row.TotalAttempts,
		CorrectCount:       row.CorrectCount,
		Interval:           time.Duration(row.IntervalNs),
		NextReview:         row.NextReview,
		LastOutcome:        mastery.Outcome(row.LastOutcome),
		LastPracticed:      row.LastPracticed,
	}
}
