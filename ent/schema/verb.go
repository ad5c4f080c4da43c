package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Verb mirrors the embedded lexicon in the database so exercises and
// mastery records have a referential anchor. Seeded at startup; the
// lexicon stays the source of truth for conjugation.
type Verb struct {
	ent.Schema
}

func (Verb) Fields() []ent.Field {
	return []ent.Field{
		field.String("infinitive").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("english").
			Default("").
			Comment("English gloss"),
		field.String("class").
			Comment("Regularity class: regular-ar, regular-er, regular-ir, irregular"),
		field.String("stem_change").
			Default("none").
			Comment("Vowel alternation pattern, e.g. e→ie"),
	}
}
