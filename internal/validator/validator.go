// Package validator matches free-text answers against the engine's
// accepted forms and classifies why a miss went wrong. It is pure and
// stateless: safe for unbounded concurrent use.
package validator

import (
	"github.com/subjunto/subjunto/internal/conjugator"
)

// Validate compares a learner's answer against the engine's result.
//
// Matching is exact after normalization (case, whitespace). With
// Options.AcceptAccentless set, accent-insensitive matches are accepted
// too; otherwise an accent-only difference is rejected and classified as
// KindAccentOnly.
func Validate(answer string, result *conjugator.Result, opts Options) Verdict {
	norm := Normalize(answer)
	if norm == "" {
		return Verdict{IsCorrect: false, ErrorKind: KindUnclassified}
	}

	for _, form := range result.Accepted() {
		if norm == Normalize(form) {
			return Verdict{IsCorrect: true, MatchedForm: form}
		}
	}

	bare := StripAccents(norm)
	if opts.AcceptAccentless {
		for _, form := range result.Accepted() {
			if bare == StripAccents(Normalize(form)) {
				return Verdict{IsCorrect: true, MatchedForm: form}
			}
		}
	}

	in := &ClassifyInput{
		Answer:        norm,
		AnswerBare:    bare,
		Result:        result,
		Canonical:     Normalize(result.Canonical),
		CanonicalBare: StripAccents(Normalize(result.Canonical)),
	}
	return Verdict{IsCorrect: false, ErrorKind: runClassifiers(DefaultClassifiers(), in)}
}
