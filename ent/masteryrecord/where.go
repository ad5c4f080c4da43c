// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/subjunto/subjunto/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUserID, v))
}

// Verb applies equality check predicate on the "verb" field. It's identical to VerbEQ.
func Verb(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldVerb, v))
}

// ConsecutiveCorrect applies equality check predicate on the "consecutive_correct" field. It's identical to ConsecutiveCorrectEQ.
func ConsecutiveCorrect(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// IntervalNs applies equality check predicate on the "interval_ns" field. It's identical to IntervalNsEQ.
func IntervalNs(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldIntervalNs, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNextReview, v))
}

// LastOutcome applies equality check predicate on the "last_outcome" field. It's identical to LastOutcomeEQ.
func LastOutcome(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastOutcome, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldUserID, v))
}

// VerbEQ applies the EQ predicate on the "verb" field.
func VerbEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldVerb, v))
}

// VerbNEQ applies the NEQ predicate on the "verb" field.
func VerbNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldVerb, v))
}

// VerbIn applies the In predicate on the "verb" field.
func VerbIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldVerb, vs...))
}

// VerbNotIn applies the NotIn predicate on the "verb" field.
func VerbNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldVerb, vs...))
}

// VerbGT applies the GT predicate on the "verb" field.
func VerbGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldVerb, v))
}

// VerbGTE applies the GTE predicate on the "verb" field.
func VerbGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldVerb, v))
}

// VerbLT applies the LT predicate on the "verb" field.
func VerbLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldVerb, v))
}

// VerbLTE applies the LTE predicate on the "verb" field.
func VerbLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldVerb, v))
}

// VerbContains applies the Contains predicate on the "verb" field.
func VerbContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldVerb, v))
}

// VerbHasPrefix applies the HasPrefix predicate on the "verb" field.
func VerbHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldVerb, v))
}

// VerbHasSuffix applies the HasSuffix predicate on the "verb" field.
func VerbHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldVerb, v))
}

// VerbEqualFold applies the EqualFold predicate on the "verb" field.
func VerbEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldVerb, v))
}

// VerbContainsFold applies the ContainsFold predicate on the "verb" field.
func VerbContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldVerb, v))
}

// ConsecutiveCorrectEQ applies the EQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectNEQ applies the NEQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectIn applies the In predicate on the "consecutive_correct" field.
func ConsecutiveCorrectIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectNotIn applies the NotIn predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectGT applies the GT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectGTE applies the GTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLT applies the LT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLTE applies the LTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldConsecutiveCorrect, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldCorrectCount, v))
}

// IntervalNsEQ applies the EQ predicate on the "interval_ns" field.
func IntervalNsEQ(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldIntervalNs, v))
}

// IntervalNsNEQ applies the NEQ predicate on the "interval_ns" field.
func IntervalNsNEQ(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldIntervalNs, v))
}

// IntervalNsIn applies the In predicate on the "interval_ns" field.
func IntervalNsIn(vs ...int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldIntervalNs, vs...))
}

// IntervalNsNotIn applies the NotIn predicate on the "interval_ns" field.
func IntervalNsNotIn(vs ...int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldIntervalNs, vs...))
}

// IntervalNsGT applies the GT predicate on the "interval_ns" field.
func IntervalNsGT(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldIntervalNs, v))
}

// IntervalNsGTE applies the GTE predicate on the "interval_ns" field.
func IntervalNsGTE(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldIntervalNs, v))
}

// IntervalNsLT applies the LT predicate on the "interval_ns" field.
func IntervalNsLT(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldIntervalNs, v))
}

// IntervalNsLTE applies the LTE predicate on the "interval_ns" field.
func IntervalNsLTE(v int64) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldIntervalNs, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldNextReview, v))
}

// LastOutcomeEQ applies the EQ predicate on the "last_outcome" field.
func LastOutcomeEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastOutcome, v))
}

// LastOutcomeNEQ applies the NEQ predicate on the "last_outcome" field.
func LastOutcomeNEQ(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLastOutcome, v))
}

// LastOutcomeIn applies the In predicate on the "last_outcome" field.
func LastOutcomeIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLastOutcome, vs...))
}

// LastOutcomeNotIn applies the NotIn predicate on the "last_outcome" field.
func LastOutcomeNotIn(vs ...string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLastOutcome, vs...))
}

// LastOutcomeGT applies the GT predicate on the "last_outcome" field.
func LastOutcomeGT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLastOutcome, v))
}

// LastOutcomeGTE applies the GTE predicate on the "last_outcome" field.
func LastOutcomeGTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLastOutcome, v))
}

// LastOutcomeLT applies the LT predicate on the "last_outcome" field.
func LastOutcomeLT(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLastOutcome, v))
}

// LastOutcomeLTE applies the LTE predicate on the "last_outcome" field.
func LastOutcomeLTE(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLastOutcome, v))
}

// LastOutcomeContains applies the Contains predicate on the "last_outcome" field.
func LastOutcomeContains(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContains(FieldLastOutcome, v))
}

// LastOutcomeHasPrefix applies the HasPrefix predicate on the "last_outcome" field.
func LastOutcomeHasPrefix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasPrefix(FieldLastOutcome, v))
}

// LastOutcomeHasSuffix applies the HasSuffix predicate on the "last_outcome" field.
func LastOutcomeHasSuffix(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldHasSuffix(FieldLastOutcome, v))
}

// LastOutcomeEqualFold applies the EqualFold predicate on the "last_outcome" field.
func LastOutcomeEqualFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEqualFold(FieldLastOutcome, v))
}

// LastOutcomeContainsFold applies the ContainsFold predicate on the "last_outcome" field.
func LastOutcomeContainsFold(v string) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldContainsFold(FieldLastOutcome, v))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.FieldLTE(FieldLastPracticed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryRecord) predicate.MasteryRecord {
	return predicate.MasteryRecord(sql.NotPredicates(p))
}
