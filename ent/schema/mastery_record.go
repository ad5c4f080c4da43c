package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is the mutable spaced-repetition state for one
// (user, verb) pair. Exactly one row per pair, updated transactionally
// on every attempt.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("verb").
			NotEmpty().
			Immutable(),
		field.Int("consecutive_correct").
			Default(0),
		field.Int("total_attempts").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Int64("interval_ns").
			Default(0).
			Comment("Current review interval in nanoseconds"),
		field.Time("next_review"),
		field.String("last_outcome").
			Default(""),
		field.Time("last_practiced"),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "verb").Unique(),
		index.Fields("user_id", "next_review"),
	}
}
