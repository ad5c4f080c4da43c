package validator

import (
	"fmt"
	"regexp"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// AmbiguousPersonError indicates prompt text named zero subjects or more
// than one. Callers must fall back to plain string-equality validation and
// log the degraded mode; silently assuming a person would produce false
// "correct" verdicts.
type AmbiguousPersonError struct {
	Prompt string
	Found  []lexicon.Person
}

func (e *AmbiguousPersonError) Error() string {
	if len(e.Found) == 0 {
		return fmt.Sprintf("no person indicator in prompt %q", e.Prompt)
	}
	return fmt.Sprintf("multiple person indicators %v in prompt %q", e.Found, e.Prompt)
}

// wordPattern extracts letter runs, keeping accented characters intact so
// "él" (pronoun) never collides with "el" (article).
var wordPattern = regexp.MustCompile(`[\p{L}]+`)

// PersonFromPrompt recovers the grammatical person from rendered prompt
// text by scanning for subject pronouns with word-boundary-safe matching.
//
// This is the legacy fallback path for exercises that predate structured
// person data. It returns an AmbiguousPersonError rather than guessing
// when the prompt names no pronoun or pronouns of different persons.
func PersonFromPrompt(prompt string) (lexicon.Person, error) {
	pronouns := make(map[string]lexicon.Person)
	for _, p := range lexicon.AllPersons() {
		for _, pronoun := range p.Pronouns() {
			pronouns[pronoun] = p
		}
	}

	var found []lexicon.Person
	seen := make(map[lexicon.Person]bool)
	for _, word := range wordPattern.FindAllString(Normalize(prompt), -1) {
		p, ok := pronouns[word]
		if !ok || seen[p] {
			continue
		}
		seen[p] = true
		found = append(found, p)
	}

	if len(found) != 1 {
		return "", &AmbiguousPersonError{Prompt: prompt, Found: found}
	}
	return found[0], nil
}
