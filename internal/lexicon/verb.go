package lexicon

import "sort"

// Class is a verb's regularity class. Verbs whose only deviation from the
// regular paradigm is a stem-change pattern keep their regular class; the
// pattern is carried separately. Anything needing explicit overrides
// (yo-form, preterite stem, participle, or full forms) is ClassIrregular.
type Class string

const (
	ClassRegularAR Class = "regular-ar"
	ClassRegularER Class = "regular-er"
	ClassRegularIR Class = "regular-ir"
	ClassIrregular Class = "irregular"
)

// StemChange is a vowel alternation pattern triggered in stressed forms.
type StemChange string

const (
	StemChangeNone StemChange = "none"
	StemChangeEIE  StemChange = "e→ie"
	StemChangeOUE  StemChange = "o→ue"
	StemChangeEI   StemChange = "e→i"
	// StemChangeOther marks a pattern outside the three common ones
	// (e.g. jugar's u→ue); its forms come from the override table.
	StemChangeOther StemChange = "other"
)

// FormKey addresses a single cell of a verb's conjugation table.
type FormKey struct {
	Tense  Tense
	Person Person
}

// Verb is immutable reference data for one infinitive. Irregularity is
// modeled as data: explicit override forms take precedence over every
// derivation rule, so adding an irregular verb is a seed change only.
type Verb struct {
	Infinitive string
	English    string
	Class      Class
	StemChange StemChange

	// YoPresent is the first-person-singular present-indicative form when
	// it is not regular (e.g. "hago"). Present-subjunctive stems derive
	// from this base.
	YoPresent string

	// PreteriteThirdPlural is the third-person-plural preterite when it is
	// not regular (e.g. "hicieron"). Imperfect-subjunctive stems derive
	// from this base.
	PreteriteThirdPlural string

	// Participle overrides regular -ado/-ido participle formation.
	Participle string

	// Overrides holds explicit surface forms keyed by tense and person.
	// An override wins unconditionally over stem and spelling rules.
	Overrides map[FormKey]string
}

// EndingClass returns the conjugation class suffix of the infinitive:
// "ar", "er" or "ir". Infinitives ending in a stressed "ír" (oír)
// belong to the ir class. Comparison is over runes, not bytes: "ír" is
// three bytes and a byte slice would miss it.
func (v *Verb) EndingClass() string {
	runes := []rune(v.Infinitive)
	if len(runes) < 2 {
		return ""
	}
	switch string(runes[len(runes)-2:]) {
	case "ar":
		return "ar"
	case "er":
		return "er"
	case "ir", "ír":
		return "ir"
	}
	return ""
}

// Stem returns the infinitive minus its class ending.
func (v *Verb) Stem() string {
	runes := []rune(v.Infinitive)
	if len(runes) < 2 {
		return v.Infinitive
	}
	return string(runes[:len(runes)-2])
}

// Override returns the explicit form for a tense and person, if declared.
func (v *Verb) Override(t Tense, p Person) (string, bool) {
	form, ok := v.Overrides[FormKey{Tense: t, Person: p}]
	return form, ok
}

// IsIrregular reports whether the verb carries any override data.
func (v *Verb) IsIrregular() bool {
	return v.Class == ClassIrregular
}

// registry indexes the seed verbs by infinitive.
var registry map[string]*Verb

func init() {
	registry = make(map[string]*Verb, len(seedVerbs))
	for i := range seedVerbs {
		registry[seedVerbs[i].Infinitive] = &seedVerbs[i]
	}
}

// Get returns the verb for an infinitive, or false if it is not in the
// lexicon. Callers must treat a miss as an error, never guess a paradigm.
func Get(infinitive string) (*Verb, bool) {
	v, ok := registry[infinitive]
	return v, ok
}

// All returns every verb in the lexicon sorted by infinitive.
func All() []*Verb {
	verbs := make([]*Verb, 0, len(registry))
	for _, v := range registry {
		verbs = append(verbs, v)
	}
	sort.Slice(verbs, func(i, j int) bool {
		return verbs[i].Infinitive < verbs[j].Infinitive
	})
	return verbs
}

// Infinitives returns every infinitive in the lexicon, sorted.
func Infinitives() []string {
	out := make([]string, 0, len(registry))
	for inf := range registry {
		out = append(out, inf)
	}
	sort.Strings(out)
	return out
}
