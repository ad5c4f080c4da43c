package exercise

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/subjunto/subjunto/internal/conjugator"
	"github.com/subjunto/subjunto/internal/lexicon"
)

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), DefaultConfig())
}

func TestGenerate_HonorsVerbAndTenseFilters(t *testing.T) {
	g := newTestGenerator(1)
	criteria := Criteria{
		Verbs:  []string{"hablar", "comer"},
		Tenses: []lexicon.Tense{lexicon.TensePresentSubjunctive},
	}

	for i := 0; i < 50; i++ {
		ex, err := g.Generate(criteria)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if ex.Verb != "hablar" && ex.Verb != "comer" {
			t.Errorf("verb %q outside filter", ex.Verb)
		}
		if ex.Tense != lexicon.TensePresentSubjunctive {
			t.Errorf("tense %q outside filter", ex.Tense)
		}
	}
}

func TestGenerate_AnswerMatchesEngine(t *testing.T) {
	g := newTestGenerator(2)

	for i := 0; i < 100; i++ {
		ex, err := g.Generate(Criteria{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		res, err := conjugator.Conjugate(ex.Verb, ex.Tense, ex.Person)
		if err != nil {
			t.Fatalf("generated exercise the engine cannot answer: %s/%s/%s", ex.Verb, ex.Tense, ex.Person)
		}
		if ex.Answer != res.Canonical {
			t.Errorf("%s/%s/%s: stored answer %q, engine says %q", ex.Verb, ex.Tense, ex.Person, ex.Answer, res.Canonical)
		}
	}
}

func TestGenerate_PromptEmbedsTriggerPronounAndInfinitive(t *testing.T) {
	g := newTestGenerator(3)

	ex, err := g.Generate(Criteria{Verbs: []string{"pensar"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(ex.Prompt, ex.TriggerPhrase) {
		t.Errorf("prompt %q does not start with trigger %q", ex.Prompt, ex.TriggerPhrase)
	}
	if !strings.Contains(ex.Prompt, "___") {
		t.Errorf("prompt %q has no blank", ex.Prompt)
	}
	if !strings.Contains(ex.Prompt, "(pensar)") {
		t.Errorf("prompt %q does not show the infinitive", ex.Prompt)
	}
	if strings.Contains(ex.Prompt, ex.Answer) {
		t.Errorf("prompt %q leaks the answer %q", ex.Prompt, ex.Answer)
	}

	found := false
	for _, pronoun := range ex.Person.Pronouns() {
		if strings.Contains(ex.Prompt, pronoun) {
			found = true
		}
	}
	if !found {
		t.Errorf("prompt %q names no pronoun for %s", ex.Prompt, ex.Person)
	}
}

func TestGenerate_RecentCombosExcluded(t *testing.T) {
	g := newTestGenerator(4)

	// Block all but one combination for a single verb and tense.
	var recent []Combo
	for _, p := range lexicon.AllPersons() {
		if p == lexicon.ThirdPlural {
			continue
		}
		recent = append(recent, Combo{Verb: "vivir", Tense: lexicon.TensePresentSubjunctive, Person: p})
	}
	criteria := Criteria{
		Verbs:  []string{"vivir"},
		Tenses: []lexicon.Tense{lexicon.TensePresentSubjunctive},
		Recent: recent,
	}

	for i := 0; i < 20; i++ {
		ex, err := g.Generate(criteria)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if ex.Person != lexicon.ThirdPlural {
			t.Errorf("generated recently seen person %s", ex.Person)
		}
	}
}

func TestGenerate_DifficultyCap(t *testing.T) {
	g := newTestGenerator(5)

	for i := 0; i < 50; i++ {
		ex, err := g.Generate(Criteria{MaxDifficulty: 2})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if ex.Difficulty > 2 {
			t.Errorf("%s/%s difficulty %d exceeds cap", ex.Verb, ex.Tense, ex.Difficulty)
		}
	}
}

func TestGenerate_NoEligibleVerbs(t *testing.T) {
	g := newTestGenerator(6)

	if _, err := g.Generate(Criteria{Verbs: []string{"florbar"}}); err == nil {
		t.Fatal("expected error for unknown verb filter")
	}
}

func TestGenerate_DueVerbsWeighted(t *testing.T) {
	g := newTestGenerator(7)
	criteria := Criteria{
		Verbs: []string{"hablar", "comer", "vivir", "pensar"},
		Due:   []string{"pensar"},
	}

	counts := make(map[string]int)
	for i := 0; i < 400; i++ {
		ex, err := g.Generate(criteria)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		counts[ex.Verb]++
	}

	// With weight 4 the due verb holds 4 of 7 tickets; it must clearly
	// dominate any single non-due verb.
	for _, other := range []string{"hablar", "comer", "vivir"} {
		if counts["pensar"] <= counts[other] {
			t.Errorf("due verb drawn %d times, %s drawn %d", counts["pensar"], other, counts[other])
		}
	}
}

func TestDifficulty(t *testing.T) {
	hablar, _ := lexicon.Get("hablar")
	pensar, _ := lexicon.Get("pensar")
	hacer, _ := lexicon.Get("hacer")

	tests := []struct {
		name  string
		verb  *lexicon.Verb
		tense lexicon.Tense
		want  int
	}{
		{"regular present", hablar, lexicon.TensePresentSubjunctive, 1},
		{"regular imperfect", hablar, lexicon.TenseImperfectSubjunctive, 2},
		{"regular pluperfect", hablar, lexicon.TensePluperfectSubjunctive, 4},
		{"stem change present", pensar, lexicon.TensePresentSubjunctive, 2},
		{"irregular pluperfect", hacer, lexicon.TensePluperfectSubjunctive, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Difficulty(tt.verb, tt.tense); got != tt.want {
				t.Errorf("Difficulty = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerate_UniqueIDs(t *testing.T) {
	g := newTestGenerator(8)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		ex, err := g.Generate(Criteria{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if seen[ex.ID] {
			t.Fatalf("duplicate exercise id %s", ex.ID)
		}
		seen[ex.ID] = true
	}
}
