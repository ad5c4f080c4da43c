// Package mastery tracks per-(user, verb) retention and schedules spaced
// repetition reviews. States are implicit in (consecutive-correct,
// interval) pairs: a fresh record is "learning", a long interval is
// "mastered", and a miss demotes the record regardless of prior history.
package mastery

import "time"

// Outcome is the result of the most recent attempt for a record.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Interval schedule. First success earns a day, each further success
// doubles up to the cap, and any miss shrinks to the minimum so the verb
// resurfaces within the same session.
const (
	FirstInterval = 24 * time.Hour
	MaxInterval   = 60 * 24 * time.Hour
	MissInterval  = 10 * time.Minute
	GrowthFactor  = 2
)

// Record is the mutable scheduling state for one (user, verb) pair.
// Created lazily on the first attempt; never deleted.
type Record struct {
	UserID string
	Verb   string

	ConsecutiveCorrect int
	TotalAttempts      int
	CorrectCount       int

	// Interval is the current gap between reviews; NextReview is the
	// moment the verb becomes due again.
	Interval   time.Duration
	NextReview time.Time

	LastOutcome   Outcome
	LastPracticed time.Time
}

// Apply folds one attempt outcome into the record. A correct attempt
// grows the interval multiplicatively up to MaxInterval; an incorrect
// attempt resets the streak and shrinks the interval to MissInterval no
// matter how mastered the verb was.
func Apply(rec *Record, correct bool, now time.Time) {
	rec.TotalAttempts++

	if correct {
		rec.CorrectCount++
		rec.ConsecutiveCorrect++
		rec.LastOutcome = OutcomeCorrect

		if rec.Interval < FirstInterval {
			rec.Interval = FirstInterval
		} else {
			rec.Interval *= GrowthFactor
			if rec.Interval > MaxInterval {
				rec.Interval = MaxInterval
			}
		}
	} else {
		rec.ConsecutiveCorrect = 0
		rec.LastOutcome = OutcomeIncorrect
		rec.Interval = MissInterval
	}

	rec.LastPracticed = now
	rec.NextReview = now.Add(rec.Interval)
}

// Accuracy returns the lifetime correct ratio, or 0 before any attempt.
func (r *Record) Accuracy() float64 {
	if r.TotalAttempts == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(r.TotalAttempts)
}

// Due reports whether the record is due for review at the given time.
func (r *Record) Due(asOf time.Time) bool {
	return !r.NextReview.After(asOf)
}

// OverdueBy returns how far past its review time the record is.
// Negative when the review is still in the future.
func (r *Record) OverdueBy(asOf time.Time) time.Duration {
	return asOf.Sub(r.NextReview)
}
