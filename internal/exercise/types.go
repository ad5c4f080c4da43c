package exercise

import (
	"time"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// Combo identifies a (verb, tense, person) practice tuple, used for
// recently-seen exclusion.
type Combo struct {
	Verb   string
	Tense  lexicon.Tense
	Person lexicon.Person
}

// Exercise is one generated practice item. Immutable once generated:
// attempts reference it, it is never edited.
type Exercise struct {
	ID     string
	Verb   string
	Tense  lexicon.Tense
	Person lexicon.Person

	// TriggerPhrase is the clause licensing the subjunctive.
	TriggerPhrase string

	// Prompt is the rendered fill-in text shown to the learner. It embeds
	// a subject pronoun, so person stays recoverable even from text.
	Prompt string

	// Answer is the canonical correct form; Alternates are the other
	// accepted forms. Withheld from the learner until after submission.
	Answer     string
	Alternates []string

	// RuleNote is the engine's explanation for the canonical form.
	RuleNote string

	// Difficulty tiers: 1 regular present subjunctive up through 5
	// irregular compound forms.
	Difficulty int

	// Hints are progressively revealing: gloss, rule note, person.
	Hints []string

	CreatedAt time.Time
}

// Criteria narrows what Generate may produce. Zero values mean "no
// restriction". Criteria travel with the request: there is no ambient
// session state shared between users.
type Criteria struct {
	// Verbs restricts sampling to these infinitives.
	Verbs []string

	// Tenses restricts sampling to these tenses.
	Tenses []lexicon.Tense

	// MaxDifficulty caps the difficulty tier (0 = uncapped).
	MaxDifficulty int

	// Recent excludes combos shown to this user in the last N exercises.
	Recent []Combo

	// Due lists verbs due for review; they are weighted heavier during
	// sampling so adaptive practice surfaces them first.
	Due []string
}

// Difficulty computes the tier for a verb and tense: the tense sets the
// base (simple before compound) and irregularity adds one.
func Difficulty(v *lexicon.Verb, tense lexicon.Tense) int {
	base := 1
	switch tense {
	case lexicon.TenseImperfectSubjunctive:
		base = 2
	case lexicon.TensePresentPerfectSubjunctive:
		base = 3
	case lexicon.TensePluperfectSubjunctive:
		base = 4
	}
	if v.IsIrregular() || v.StemChange != lexicon.StemChangeNone {
		base++
	}
	return base
}
