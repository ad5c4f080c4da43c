package validator

import (
	"errors"
	"testing"

	"github.com/subjunto/subjunto/internal/conjugator"
	"github.com/subjunto/subjunto/internal/lexicon"
)

func result(t *testing.T, inf string, tense lexicon.Tense, person lexicon.Person) *conjugator.Result {
	t.Helper()
	res, err := conjugator.Conjugate(inf, tense, person)
	if err != nil {
		t.Fatalf("conjugate %s/%s/%s: %v", inf, tense, person, err)
	}
	return res
}

func TestValidate_ExactAndNormalizedMatches(t *testing.T) {
	res := result(t, "hablar", lexicon.TensePresentSubjunctive, lexicon.FirstSingular)

	tests := []struct {
		answer string
		want   bool
	}{
		{"hable", true},
		{"  hable  ", true},
		{"HABLE", true},
		{"Hable", true},
		{"hables", false},
		{"", false},
	}

	for _, tt := range tests {
		v := Validate(tt.answer, res, Options{})
		if v.IsCorrect != tt.want {
			t.Errorf("Validate(%q).IsCorrect = %v, want %v", tt.answer, v.IsCorrect, tt.want)
		}
	}
}

func TestValidate_AlternatesAccepted(t *testing.T) {
	res := result(t, "hablar", lexicon.TenseImperfectSubjunctive, lexicon.ThirdSingular)

	for _, answer := range []string{"hablara", "hablase"} {
		v := Validate(answer, res, Options{})
		if !v.IsCorrect {
			t.Errorf("Validate(%q) rejected an accepted variant", answer)
		}
		if v.MatchedForm != answer {
			t.Errorf("Validate(%q).MatchedForm = %q", answer, v.MatchedForm)
		}
	}
}

func TestValidate_AccentHandling(t *testing.T) {
	res := result(t, "hablar", lexicon.TensePresentSubjunctive, lexicon.SecondPlural) // habléis

	// Strict: accent-only miss is rejected but classified distinctly.
	v := Validate("hableis", res, Options{})
	if v.IsCorrect {
		t.Fatal("strict mode accepted an accentless answer")
	}
	if v.ErrorKind != KindAccentOnly {
		t.Fatalf("ErrorKind = %q, want %q", v.ErrorKind, KindAccentOnly)
	}

	// Lenient: the same answer is accepted.
	v = Validate("hableis", res, Options{AcceptAccentless: true})
	if !v.IsCorrect {
		t.Fatal("lenient mode rejected an accentless answer")
	}
}

func TestValidate_Classification(t *testing.T) {
	tests := []struct {
		name   string
		inf    string
		tense  lexicon.Tense
		person lexicon.Person
		answer string
		want   ErrorKind
	}{
		// The indicative "piensa" keeps the stem but misses the
		// opposite-vowel ending.
		{"indicative ending on stem-changed stem", "pensar", lexicon.TensePresentSubjunctive, lexicon.ThirdSingular, "piensa", KindWrongEnding},
		{"missed stem change", "pensar", lexicon.TensePresentSubjunctive, lexicon.ThirdSingular, "pense", KindWrongStem},
		{"missed spelling change", "empezar", lexicon.TensePresentSubjunctive, lexicon.FirstSingular, "empieze", KindWrongStem},
		{"indicative form, different stem shape", "ir", lexicon.TensePresentSubjunctive, lexicon.ThirdSingular, "va", KindWrongMood},
		{"unrelated word", "hablar", lexicon.TensePresentSubjunctive, lexicon.FirstSingular, "comiera", KindUnclassified},
		{"wrong auxiliary person", "hacer", lexicon.TensePresentPerfectSubjunctive, lexicon.ThirdPlural, "haya hecho", KindWrongEnding},
		{"regularized participle", "hacer", lexicon.TensePresentPerfectSubjunctive, lexicon.ThirdPlural, "hayan hacido", KindWrongStem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := result(t, tt.inf, tt.tense, tt.person)
			v := Validate(tt.answer, res, Options{})
			if v.IsCorrect {
				t.Fatalf("Validate(%q) unexpectedly correct", tt.answer)
			}
			if v.ErrorKind != tt.want {
				t.Errorf("Validate(%q).ErrorKind = %q, want %q", tt.answer, v.ErrorKind, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hable  ", "hable"},
		{"HAYAN   HECHO", "hayan hecho"},
		{"hubiera\thablado", "hubiera hablado"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripAccents_KeepsEnye(t *testing.T) {
	if got := StripAccents("averigüé"); got != "averigue" {
		t.Errorf("StripAccents = %q, want %q", got, "averigue")
	}
	if got := StripAccents("señal"); got != "señal" {
		t.Errorf("StripAccents altered ñ: %q", got)
	}
}

func TestPersonFromPrompt(t *testing.T) {
	tests := []struct {
		prompt string
		want   lexicon.Person
	}{
		{"Espero que tú ___ (hablar)", lexicon.SecondSingular},
		{"Es importante que nosotros ___ (salir)", lexicon.FirstPlural},
		{"Dudo que ellos ___ (venir)", lexicon.ThirdPlural},
		{"Ojalá que ella ___ (estar)", lexicon.ThirdSingular},
		{"Quiero que usted ___ (pensar)", lexicon.ThirdSingular},
	}

	for _, tt := range tests {
		got, err := PersonFromPrompt(tt.prompt)
		if err != nil {
			t.Errorf("PersonFromPrompt(%q): %v", tt.prompt, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PersonFromPrompt(%q) = %s, want %s", tt.prompt, got, tt.want)
		}
	}
}

func TestPersonFromPrompt_Ambiguous(t *testing.T) {
	var ambiguous *AmbiguousPersonError

	// No pronoun at all; the article "el" must not match "él".
	_, err := PersonFromPrompt("Espero que el equipo gane")
	if !errors.As(err, &ambiguous) {
		t.Fatalf("want AmbiguousPersonError, got %v", err)
	}
	if len(ambiguous.Found) != 0 {
		t.Errorf("Found = %v, want none", ambiguous.Found)
	}

	// Two different persons named.
	_, err = PersonFromPrompt("Quiero que tú y ellos ___")
	if !errors.As(err, &ambiguous) {
		t.Fatalf("want AmbiguousPersonError, got %v", err)
	}
	if len(ambiguous.Found) != 2 {
		t.Errorf("Found = %v, want two persons", ambiguous.Found)
	}
}
