package validator

import (
	"strings"

	"github.com/subjunto/subjunto/internal/conjugator"
	"github.com/subjunto/subjunto/internal/lexicon"
)

// Classifier is one rule for explaining a mismatch. Rules are stateless
// and safe for concurrent use.
type Classifier interface {
	Name() string

	// Classify returns the error kind and true when the rule applies.
	Classify(in *ClassifyInput) (ErrorKind, bool)
}

// DefaultClassifiers returns the rules in priority order; the first match
// wins. Ending errors outrank mood detection: a same-stem indicative form
// ("piensa" for "piense") is reported as a wrong ending, which is the
// more actionable correction.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&accentClassifier{},
		&endingClassifier{},
		&stemClassifier{},
		&moodClassifier{},
	}
}

// runClassifiers executes the rules in order and returns the first match,
// or KindUnclassified when none apply.
func runClassifiers(classifiers []Classifier, in *ClassifyInput) ErrorKind {
	for _, c := range classifiers {
		if kind, ok := c.Classify(in); ok {
			return kind
		}
	}
	return KindUnclassified
}

// accentClassifier matches answers that differ from an accepted form only
// in diacritics.
type accentClassifier struct{}

func (accentClassifier) Name() string { return "accent" }

func (accentClassifier) Classify(in *ClassifyInput) (ErrorKind, bool) {
	for _, form := range in.Result.Accepted() {
		if in.AnswerBare == StripAccents(Normalize(form)) {
			return KindAccentOnly, true
		}
	}
	return "", false
}

// endingClassifier matches answers that keep the canonical stem but attach
// the wrong ending. For compound forms the auxiliary carries the person
// ending, so a matching participle with a mismatched auxiliary lands here.
type endingClassifier struct{}

func (endingClassifier) Name() string { return "ending" }

func (endingClassifier) Classify(in *ClassifyInput) (ErrorKind, bool) {
	if auxA, partA, ok := splitCompound(in.Answer); ok {
		auxC, partC, okC := splitCompound(in.Canonical)
		if okC && partA == partC && auxA != auxC {
			return KindWrongEnding, true
		}
		return "", false
	}

	stem := Normalize(in.Result.Stem)
	if stem == "" {
		return "", false
	}
	if strings.HasPrefix(in.Answer, stem) && in.Answer != in.Canonical {
		return KindWrongEnding, true
	}
	// Accent slips inside the stem should not mask an ending error.
	if strings.HasPrefix(in.AnswerBare, StripAccents(stem)) && in.AnswerBare != in.CanonicalBare {
		return KindWrongEnding, true
	}
	return "", false
}

// stemClassifier matches answers with the right ending on the wrong stem,
// the signature of a missed stem change or spelling adjustment.
type stemClassifier struct{}

func (stemClassifier) Name() string { return "stem" }

func (stemClassifier) Classify(in *ClassifyInput) (ErrorKind, bool) {
	if auxA, partA, ok := splitCompound(in.Answer); ok {
		auxC, partC, okC := splitCompound(in.Canonical)
		if okC && auxA == auxC && partA != partC {
			return KindWrongStem, true
		}
		return "", false
	}

	ending := Normalize(in.Result.Ending)
	if ending == "" {
		return "", false
	}
	if strings.HasSuffix(in.AnswerBare, StripAccents(ending)) {
		return KindWrongStem, true
	}
	return "", false
}

// moodClassifier matches answers that are a present-indicative form of the
// same verb, in any person: the learner conjugated correctly but in the
// wrong mood.
type moodClassifier struct{}

func (moodClassifier) Name() string { return "mood" }

func (moodClassifier) Classify(in *ClassifyInput) (ErrorKind, bool) {
	for _, person := range lexicon.AllPersons() {
		ind, err := conjugator.Conjugate(in.Result.Infinitive, lexicon.TensePresentIndicative, person)
		if err != nil {
			return "", false
		}
		if in.AnswerBare == StripAccents(Normalize(ind.Canonical)) {
			return KindWrongMood, true
		}
	}
	return "", false
}

// splitCompound splits a two-token compound form into auxiliary and
// participle. Returns false for single-token answers.
func splitCompound(form string) (aux, participle string, ok bool) {
	parts := strings.SplitN(form, " ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
