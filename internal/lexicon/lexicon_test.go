package lexicon

import "testing"

func TestRegistryCoversSeed(t *testing.T) {
	for _, inf := range Infinitives() {
		v, ok := Get(inf)
		if !ok {
			t.Errorf("Get(%q) missed a seeded verb", inf)
			continue
		}
		if v.Infinitive != inf {
			t.Errorf("Get(%q) returned %q", inf, v.Infinitive)
		}
	}
	if _, ok := Get("inventar-palabra"); ok {
		t.Error("Get accepted a verb outside the lexicon")
	}
}

func TestSeedDataConsistency(t *testing.T) {
	practice := make(map[Tense]bool)
	for _, tense := range PracticeTenses() {
		practice[tense] = true
	}

	for _, v := range All() {
		if v.English == "" {
			t.Errorf("%s: missing gloss", v.Infinitive)
		}
		if v.EndingClass() == "" {
			t.Errorf("%s: unrecognized ending class", v.Infinitive)
		}

		// Stem-change patterns ride on regular classes; full irregulars
		// carry override data instead.
		if v.StemChange == StemChangeOther && len(v.Overrides) == 0 {
			t.Errorf("%s: StemChangeOther without override forms", v.Infinitive)
		}
		if v.Class == ClassIrregular &&
			v.YoPresent == "" && v.PreteriteThirdPlural == "" &&
			v.Participle == "" && len(v.Overrides) == 0 {
			t.Errorf("%s: irregular class but no irregularity data", v.Infinitive)
		}

		for key, form := range v.Overrides {
			if form == "" {
				t.Errorf("%s: empty override for %v", v.Infinitive, key)
			}
			if !practice[key.Tense] && key.Tense != TensePresentIndicative {
				t.Errorf("%s: override for unsupported tense %q", v.Infinitive, key.Tense)
			}
			if key.Person.Index() < 0 {
				t.Errorf("%s: override for unknown person %q", v.Infinitive, key.Person)
			}
		}
	}
}

func TestEndingClass(t *testing.T) {
	tests := []struct {
		infinitive string
		want       string
	}{
		{"hablar", "ar"},
		{"comer", "er"},
		{"vivir", "ir"},
		// Stressed "ír" is multibyte; the class check runs over runes.
		{"oír", "ir"},
		{"x", ""},
	}

	for _, tt := range tests {
		v := Verb{Infinitive: tt.infinitive}
		if got := v.EndingClass(); got != tt.want {
			t.Errorf("EndingClass(%q) = %q, want %q", tt.infinitive, got, tt.want)
		}
	}
}

func TestAllSortedAndStable(t *testing.T) {
	verbs := All()
	if len(verbs) == 0 {
		t.Fatal("empty lexicon")
	}
	for i := 1; i < len(verbs); i++ {
		if verbs[i-1].Infinitive >= verbs[i].Infinitive {
			t.Fatalf("All() not sorted at %d: %q then %q",
				i, verbs[i-1].Infinitive, verbs[i].Infinitive)
		}
	}
	if len(verbs) != len(Infinitives()) {
		t.Errorf("All()=%d verbs, Infinitives()=%d", len(verbs), len(Infinitives()))
	}
}

func TestPersonParadigm(t *testing.T) {
	persons := AllPersons()
	if len(persons) != 6 {
		t.Fatalf("paradigm has %d persons, want 6", len(persons))
	}
	for i, p := range persons {
		if p.Index() != i {
			t.Errorf("%s Index() = %d, want %d", p, p.Index(), i)
		}
		if p.Pronoun() == "" {
			t.Errorf("%s: no primary pronoun", p)
		}
		found := false
		for _, alt := range p.Pronouns() {
			if alt == p.Pronoun() {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: primary pronoun %q not in Pronouns()", p, p.Pronoun())
		}
	}
}

func TestPracticeTensesExcludeIndicative(t *testing.T) {
	for _, tense := range PracticeTenses() {
		if tense == TensePresentIndicative {
			t.Fatal("present indicative is a recognition tense, not a practice target")
		}
	}
}
