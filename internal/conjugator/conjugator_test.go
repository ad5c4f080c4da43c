package conjugator

import (
	"errors"
	"strings"
	"testing"

	"github.com/subjunto/subjunto/internal/lexicon"
)

func mustConjugate(t *testing.T, inf string, tense lexicon.Tense, person lexicon.Person) *Result {
	t.Helper()
	res, err := Conjugate(inf, tense, person)
	if err != nil {
		t.Fatalf("Conjugate(%q, %s, %s): %v", inf, tense, person, err)
	}
	return res
}

func TestPresentSubjunctive_RegularParadigms(t *testing.T) {
	tests := []struct {
		inf  string
		want [6]string
	}{
		{"hablar", [6]string{"hable", "hables", "hable", "hablemos", "habléis", "hablen"}},
		{"comer", [6]string{"coma", "comas", "coma", "comamos", "comáis", "coman"}},
		{"vivir", [6]string{"viva", "vivas", "viva", "vivamos", "viváis", "vivan"}},
	}

	for _, tt := range tests {
		for i, person := range lexicon.AllPersons() {
			res := mustConjugate(t, tt.inf, lexicon.TensePresentSubjunctive, person)
			if res.Canonical != tt.want[i] {
				t.Errorf("%s %s = %q, want %q", tt.inf, person, res.Canonical, tt.want[i])
			}
			if len(res.Alternates) != 0 {
				t.Errorf("%s %s: unexpected alternates %v", tt.inf, person, res.Alternates)
			}
		}
	}
}

func TestPresentSubjunctive_StemChanges(t *testing.T) {
	tests := []struct {
		inf    string
		person lexicon.Person
		want   string
	}{
		// Boot persons diphthongize.
		{"pensar", lexicon.FirstSingular, "piense"},
		{"pensar", lexicon.ThirdSingular, "piense"},
		{"pensar", lexicon.ThirdPlural, "piensen"},
		{"entender", lexicon.SecondSingular, "entiendas"},
		{"encontrar", lexicon.ThirdSingular, "encuentre"},
		{"poder", lexicon.FirstSingular, "pueda"},
		// Outside the boot, -ar/-er stems are untouched.
		{"pensar", lexicon.FirstPlural, "pensemos"},
		{"pensar", lexicon.SecondPlural, "penséis"},
		{"poder", lexicon.FirstPlural, "podamos"},
		// -ir verbs raise the vowel outside the boot.
		{"sentir", lexicon.ThirdSingular, "sienta"},
		{"sentir", lexicon.FirstPlural, "sintamos"},
		{"sentir", lexicon.SecondPlural, "sintáis"},
		{"dormir", lexicon.ThirdPlural, "duerman"},
		{"dormir", lexicon.FirstPlural, "durmamos"},
		// e→i raises everywhere.
		{"pedir", lexicon.FirstSingular, "pida"},
		{"pedir", lexicon.FirstPlural, "pidamos"},
		{"pedir", lexicon.SecondPlural, "pidáis"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, tt.inf, lexicon.TensePresentSubjunctive, tt.person)
		if res.Canonical != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.inf, tt.person, res.Canonical, tt.want)
		}
	}
}

func TestPresentSubjunctive_SpellingAdjustments(t *testing.T) {
	tests := []struct {
		inf    string
		person lexicon.Person
		want   string
	}{
		{"buscar", lexicon.FirstSingular, "busque"},
		{"llegar", lexicon.ThirdPlural, "lleguen"},
		{"cruzar", lexicon.FirstPlural, "crucemos"},
		{"averiguar", lexicon.ThirdSingular, "averigüe"},
		{"escoger", lexicon.FirstSingular, "escoja"},
		{"vencer", lexicon.SecondSingular, "venzas"},
		{"seguir", lexicon.FirstSingular, "siga"},
		{"seguir", lexicon.FirstPlural, "sigamos"},
		{"elegir", lexicon.ThirdSingular, "elija"},
		// Stem change and spelling rule in the same form: the spelling
		// rule applies to the changed cluster.
		{"empezar", lexicon.FirstSingular, "empiece"},
		{"empezar", lexicon.FirstPlural, "empecemos"},
		{"almorzar", lexicon.ThirdPlural, "almuercen"},
		{"jugar", lexicon.FirstPlural, "juguemos"},
		{"jugar", lexicon.FirstSingular, "juegue"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, tt.inf, lexicon.TensePresentSubjunctive, tt.person)
		if res.Canonical != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.inf, tt.person, res.Canonical, tt.want)
		}
	}
}

func TestPresentSubjunctive_IrregularYoStems(t *testing.T) {
	tests := []struct {
		inf    string
		person lexicon.Person
		want   string
	}{
		{"hacer", lexicon.FirstSingular, "haga"},
		{"hacer", lexicon.FirstPlural, "hagamos"},
		{"tener", lexicon.SecondSingular, "tengas"},
		{"venir", lexicon.ThirdPlural, "vengan"},
		{"conocer", lexicon.FirstSingular, "conozca"},
		{"decir", lexicon.FirstPlural, "digamos"},
		{"traer", lexicon.ThirdSingular, "traiga"},
		{"oír", lexicon.SecondPlural, "oigáis"},
		{"ver", lexicon.FirstSingular, "vea"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, tt.inf, lexicon.TensePresentSubjunctive, tt.person)
		if res.Canonical != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.inf, tt.person, res.Canonical, tt.want)
		}
	}
}

func TestPresentSubjunctive_FullyIrregular(t *testing.T) {
	tests := []struct {
		inf  string
		want [6]string
	}{
		{"ser", [6]string{"sea", "seas", "sea", "seamos", "seáis", "sean"}},
		{"ir", [6]string{"vaya", "vayas", "vaya", "vayamos", "vayáis", "vayan"}},
		{"estar", [6]string{"esté", "estés", "esté", "estemos", "estéis", "estén"}},
		{"saber", [6]string{"sepa", "sepas", "sepa", "sepamos", "sepáis", "sepan"}},
		{"dar", [6]string{"dé", "des", "dé", "demos", "deis", "den"}},
		{"haber", [6]string{"haya", "hayas", "haya", "hayamos", "hayáis", "hayan"}},
	}

	for _, tt := range tests {
		for i, person := range lexicon.AllPersons() {
			res := mustConjugate(t, tt.inf, lexicon.TensePresentSubjunctive, person)
			if res.Canonical != tt.want[i] {
				t.Errorf("%s %s = %q, want %q", tt.inf, person, res.Canonical, tt.want[i])
			}
		}
	}
}

func TestImperfectSubjunctive_TwoEquivalentVariants(t *testing.T) {
	tests := []struct {
		inf     string
		person  lexicon.Person
		wantRa  string
		wantSe  string
	}{
		{"hablar", lexicon.FirstSingular, "hablara", "hablase"},
		{"hablar", lexicon.FirstPlural, "habláramos", "hablásemos"},
		{"comer", lexicon.SecondSingular, "comieras", "comieses"},
		{"comer", lexicon.SecondPlural, "comierais", "comieseis"},
		{"hacer", lexicon.ThirdSingular, "hiciera", "hiciese"},
		{"ser", lexicon.ThirdPlural, "fueran", "fuesen"},
		{"ser", lexicon.FirstPlural, "fuéramos", "fuésemos"},
		{"decir", lexicon.FirstSingular, "dijera", "dijese"},
		{"dormir", lexicon.ThirdSingular, "durmiera", "durmiese"},
		{"pedir", lexicon.ThirdPlural, "pidieran", "pidiesen"},
		{"leer", lexicon.FirstSingular, "leyera", "leyese"},
		{"tener", lexicon.FirstPlural, "tuviéramos", "tuviésemos"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, tt.inf, lexicon.TenseImperfectSubjunctive, tt.person)
		if res.Canonical != tt.wantRa {
			t.Errorf("%s %s canonical = %q, want %q", tt.inf, tt.person, res.Canonical, tt.wantRa)
		}
		if len(res.Alternates) != 1 || res.Alternates[0] != tt.wantSe {
			t.Errorf("%s %s alternates = %v, want [%q]", tt.inf, tt.person, res.Alternates, tt.wantSe)
		}
	}
}

func TestImperfectSubjunctive_VariantsShareStem(t *testing.T) {
	for _, inf := range lexicon.Infinitives() {
		for _, person := range lexicon.AllPersons() {
			res := mustConjugate(t, inf, lexicon.TenseImperfectSubjunctive, person)
			if len(res.Alternates) != 1 {
				t.Fatalf("%s %s: want exactly one alternate, got %v", inf, person, res.Alternates)
			}
			idx := person.Index()
			ra, se := res.Canonical, res.Alternates[0]
			raStem := strings.TrimSuffix(ra, imperfectRaEndings[idx])
			seStem := strings.TrimSuffix(se, imperfectSeEndings[idx])
			if raStem == ra || seStem == se {
				t.Errorf("%s %s: %q / %q missing the expected suffixes", inf, person, ra, se)
			}
			if raStem != seStem {
				t.Errorf("%s %s: variant stems differ: %q vs %q", inf, person, raStem, seStem)
			}
		}
	}
}

func TestCompoundTenses(t *testing.T) {
	tests := []struct {
		inf    string
		tense  lexicon.Tense
		person lexicon.Person
		want   string
	}{
		{"hablar", lexicon.TensePresentPerfectSubjunctive, lexicon.FirstSingular, "haya hablado"},
		{"comer", lexicon.TensePresentPerfectSubjunctive, lexicon.FirstPlural, "hayamos comido"},
		{"hacer", lexicon.TensePresentPerfectSubjunctive, lexicon.ThirdPlural, "hayan hecho"},
		{"escribir", lexicon.TensePresentPerfectSubjunctive, lexicon.SecondSingular, "hayas escrito"},
		{"ver", lexicon.TensePresentPerfectSubjunctive, lexicon.ThirdSingular, "haya visto"},
		{"leer", lexicon.TensePresentPerfectSubjunctive, lexicon.FirstSingular, "haya leído"},
		{"hablar", lexicon.TensePluperfectSubjunctive, lexicon.ThirdSingular, "hubiera hablado"},
		{"volver", lexicon.TensePluperfectSubjunctive, lexicon.FirstSingular, "hubiera vuelto"},
		{"morir", lexicon.TensePluperfectSubjunctive, lexicon.ThirdPlural, "hubieran muerto"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, tt.inf, tt.tense, tt.person)
		if res.Canonical != tt.want {
			t.Errorf("%s %s %s = %q, want %q", tt.inf, tt.tense, tt.person, res.Canonical, tt.want)
		}
	}
}

func TestCompound_PluperfectHasSeAlternate(t *testing.T) {
	res := mustConjugate(t, "hablar", lexicon.TensePluperfectSubjunctive, lexicon.FirstSingular)
	if len(res.Alternates) != 1 || res.Alternates[0] != "hubiese hablado" {
		t.Fatalf("alternates = %v, want [hubiese hablado]", res.Alternates)
	}

	res = mustConjugate(t, "hablar", lexicon.TensePresentPerfectSubjunctive, lexicon.FirstSingular)
	if len(res.Alternates) != 0 {
		t.Fatalf("present perfect should have no alternates, got %v", res.Alternates)
	}
}

func TestConjugate_Deterministic(t *testing.T) {
	for _, inf := range []string{"hablar", "empezar", "hacer", "ser"} {
		for _, tense := range lexicon.PracticeTenses() {
			for _, person := range lexicon.AllPersons() {
				a := mustConjugate(t, inf, tense, person)
				b := mustConjugate(t, inf, tense, person)
				if a.Canonical != b.Canonical {
					t.Errorf("%s %s %s: %q != %q on repeat call", inf, tense, person, a.Canonical, b.Canonical)
				}
			}
		}
	}
}

func TestAccentedInfinitive(t *testing.T) {
	// oír ends in a three-byte "ír"; class detection must work on runes
	// or the verb falls out of the ir class entirely.
	tests := []struct {
		tense  lexicon.Tense
		person lexicon.Person
		want   string
	}{
		{lexicon.TensePresentSubjunctive, lexicon.FirstSingular, "oiga"},
		{lexicon.TensePresentSubjunctive, lexicon.ThirdSingular, "oiga"},
		{lexicon.TensePresentSubjunctive, lexicon.FirstPlural, "oigamos"},
		{lexicon.TensePresentSubjunctive, lexicon.SecondPlural, "oigáis"},
		{lexicon.TensePresentSubjunctive, lexicon.ThirdPlural, "oigan"},
		{lexicon.TenseImperfectSubjunctive, lexicon.ThirdSingular, "oyera"},
		{lexicon.TensePresentPerfectSubjunctive, lexicon.ThirdSingular, "haya oído"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, "oír", tt.tense, tt.person)
		if res.Canonical != tt.want {
			t.Errorf("oír %s %s = %q, want %q", tt.tense, tt.person, res.Canonical, tt.want)
		}
	}
}

func TestConjugate_TotalOverLexicon(t *testing.T) {
	for _, inf := range lexicon.Infinitives() {
		for _, tense := range lexicon.PracticeTenses() {
			for _, person := range lexicon.AllPersons() {
				if _, err := Conjugate(inf, tense, person); err != nil {
					t.Errorf("Conjugate(%q, %s, %s): %v", inf, tense, person, err)
				}
			}
		}
	}
}

func TestConjugate_Failures(t *testing.T) {
	_, err := Conjugate("bailar", lexicon.TensePresentSubjunctive, lexicon.FirstSingular)
	var unknown *UnknownVerbError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownVerbError, got %v", err)
	}

	_, err = Conjugate("hablar", lexicon.Tense("future-subjunctive"), lexicon.FirstSingular)
	var unsupported *UnsupportedFormError
	if !errors.As(err, &unsupported) {
		t.Fatalf("want UnsupportedFormError for tense, got %v", err)
	}

	_, err = Conjugate("hablar", lexicon.TensePresentSubjunctive, lexicon.Person("4sg"))
	if !errors.As(err, &unsupported) {
		t.Fatalf("want UnsupportedFormError for person, got %v", err)
	}
}

func TestPresentIndicative_DiagnosisForms(t *testing.T) {
	tests := []struct {
		inf    string
		person lexicon.Person
		want   string
	}{
		{"hablar", lexicon.FirstSingular, "hablo"},
		{"pensar", lexicon.ThirdSingular, "piensa"},
		{"pensar", lexicon.FirstPlural, "pensamos"},
		{"hacer", lexicon.FirstSingular, "hago"},
		{"seguir", lexicon.FirstSingular, "sigo"},
		{"escoger", lexicon.FirstSingular, "escojo"},
		{"pedir", lexicon.SecondSingular, "pides"},
		{"ser", lexicon.ThirdSingular, "es"},
		{"ir", lexicon.FirstPlural, "vamos"},
		{"oír", lexicon.SecondSingular, "oyes"},
		{"tener", lexicon.SecondSingular, "tienes"},
	}

	for _, tt := range tests {
		res := mustConjugate(t, tt.inf, lexicon.TensePresentIndicative, tt.person)
		if res.Canonical != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.inf, tt.person, res.Canonical, tt.want)
		}
	}
}

func TestParticiples(t *testing.T) {
	tests := []struct {
		inf       string
		want      string
		irregular bool
	}{
		{"hablar", "hablado", false},
		{"comer", "comido", false},
		{"vivir", "vivido", false},
		{"leer", "leído", true},
		{"hacer", "hecho", true},
		{"escribir", "escrito", true},
		{"volver", "vuelto", true},
		{"romper", "roto", true},
		{"abrir", "abierto", true},
	}

	for _, tt := range tests {
		v, ok := lexicon.Get(tt.inf)
		if !ok {
			t.Fatalf("verb %q missing from lexicon", tt.inf)
		}
		got, irregular := Participle(v)
		if got != tt.want || irregular != tt.irregular {
			t.Errorf("Participle(%s) = %q/%v, want %q/%v", tt.inf, got, irregular, tt.want, tt.irregular)
		}
	}
}
