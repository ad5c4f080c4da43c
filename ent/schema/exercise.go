package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Exercise is one generated practice item. Immutable once stored:
// attempts reference it by id and it is never edited.
type Exercise struct {
	ent.Schema
}

func (Exercise) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("Generator-assigned UUID"),
		field.String("verb").
			NotEmpty().
			Immutable().
			Comment("Infinitive, references the verb table"),
		field.String("tense").
			Immutable(),
		field.String("person").
			Immutable(),
		field.String("trigger_phrase").
			Immutable(),
		field.String("prompt").
			Immutable(),
		field.String("answer").
			Immutable().
			Comment("Canonical form from the conjugation engine"),
		field.JSON("alternates", []string{}).
			Optional().
			Immutable(),
		field.String("rule_note").
			Default("").
			Immutable(),
		field.Int("difficulty").
			Immutable(),
		field.JSON("hints", []string{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Exercise) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("verb"),
		index.Fields("created_at"),
	}
}
