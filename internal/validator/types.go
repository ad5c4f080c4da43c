package validator

import "github.com/subjunto/subjunto/internal/conjugator"

// ErrorKind classifies why an answer missed, so feedback can target an
// explanation instead of a bare "incorrect".
type ErrorKind string

const (
	// KindAccentOnly: the letters match, only diacritics differ.
	KindAccentOnly ErrorKind = "accent-only"

	// KindWrongEnding: the stem is right, the person/tense ending is not.
	KindWrongEnding ErrorKind = "wrong-ending"

	// KindWrongStem: the ending is right, the stem is not (typically a
	// missed stem change or spelling adjustment).
	KindWrongStem ErrorKind = "wrong-stem"

	// KindWrongMood: the answer is a well-formed indicative form of the
	// same verb: mood confusion rather than a morphology slip.
	KindWrongMood ErrorKind = "wrong-mood"

	// KindUnclassified: a mismatch none of the rules could explain.
	KindUnclassified ErrorKind = "unclassified"
)

// Verdict is the structured outcome of validating one answer.
type Verdict struct {
	IsCorrect bool

	// MatchedForm is the accepted form the answer matched, when correct.
	MatchedForm string

	// ErrorKind is set when the answer is incorrect.
	ErrorKind ErrorKind
}

// Options controls matching strictness.
type Options struct {
	// AcceptAccentless widens matching to accent-insensitive comparison.
	// When disabled, an accent-only mismatch is rejected but classified
	// as KindAccentOnly rather than as a stem or ending error.
	AcceptAccentless bool
}

// ClassifyInput carries the normalized context a classifier rule inspects.
type ClassifyInput struct {
	// Answer is the learner's answer, normalized.
	Answer string

	// AnswerBare is the answer with accents stripped as well.
	AnswerBare string

	// Result is the engine's ground truth for the exercise.
	Result *conjugator.Result

	// Canonical and CanonicalBare are the normalized canonical form.
	Canonical     string
	CanonicalBare string
}
