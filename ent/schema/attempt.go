package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is an append-only record of one submitted answer. Attempts
// are never edited; a correction is a new attempt.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("answer").
			Immutable(),
		field.Bool("is_correct").
			Immutable(),
		field.String("error_kind").
			Default("").
			Immutable().
			Comment("Validator classification when incorrect"),
		field.String("feedback_text").
			Default("").
			Immutable(),
		field.Int64("elapsed_ms").
			Default(0).
			Immutable().
			Comment("Time from prompt to submission, 0 when unreported"),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "submitted_at"),
		index.Fields("exercise_id"),
	}
}
