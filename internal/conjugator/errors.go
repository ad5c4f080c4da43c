package conjugator

import (
	"fmt"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// UnknownVerbError indicates the requested infinitive is not in the lexicon.
// This is a caller or seed-data bug: the engine never guesses a paradigm
// for a verb it does not know.
type UnknownVerbError struct {
	Infinitive string
}

func (e *UnknownVerbError) Error() string {
	return fmt.Sprintf("unknown verb %q", e.Infinitive)
}

// UnsupportedFormError indicates the engine cannot produce a form for the
// tense/person combination, either because the tense is outside the
// supported paradigms or the person slot is invalid.
type UnsupportedFormError struct {
	Infinitive string
	Tense      lexicon.Tense
	Person     lexicon.Person
	Reason     string
}

func (e *UnsupportedFormError) Error() string {
	msg := fmt.Sprintf("unsupported form %s/%s for %q", e.Tense, e.Person, e.Infinitive)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}
