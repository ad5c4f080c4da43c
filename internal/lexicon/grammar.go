package lexicon

// Tense identifies a conjugation paradigm supported by the engine.
type Tense string

const (
	TensePresentSubjunctive        Tense = "present-subjunctive"
	TenseImperfectSubjunctive      Tense = "imperfect-subjunctive"
	TensePresentPerfectSubjunctive Tense = "present-perfect-subjunctive"
	TensePluperfectSubjunctive     Tense = "pluperfect-subjunctive"

	// TensePresentIndicative is not a practice target. It exists so the
	// validator can recognize an indicative form supplied where the
	// subjunctive was required.
	TensePresentIndicative Tense = "present-indicative"
)

// PracticeTenses returns the tenses exercises are generated for,
// in curriculum order (simple before compound).
func PracticeTenses() []Tense {
	return []Tense{
		TensePresentSubjunctive,
		TenseImperfectSubjunctive,
		TensePresentPerfectSubjunctive,
		TensePluperfectSubjunctive,
	}
}

// IsCompound reports whether the tense is formed with auxiliary haber
// plus a past participle.
func (t Tense) IsCompound() bool {
	return t == TensePresentPerfectSubjunctive || t == TensePluperfectSubjunctive
}

// DisplayName returns a human-readable tense name.
func (t Tense) DisplayName() string {
	switch t {
	case TensePresentSubjunctive:
		return "Present Subjunctive"
	case TenseImperfectSubjunctive:
		return "Imperfect Subjunctive"
	case TensePresentPerfectSubjunctive:
		return "Present Perfect Subjunctive"
	case TensePluperfectSubjunctive:
		return "Pluperfect Subjunctive"
	case TensePresentIndicative:
		return "Present Indicative"
	default:
		return string(t)
	}
}

// Person identifies one of the six paradigm slots.
type Person string

const (
	FirstSingular  Person = "1sg"
	SecondSingular Person = "2sg"
	ThirdSingular  Person = "3sg"
	FirstPlural    Person = "1pl"
	SecondPlural   Person = "2pl"
	ThirdPlural    Person = "3pl"
)

// AllPersons returns the six persons in paradigm order.
func AllPersons() []Person {
	return []Person{
		FirstSingular, SecondSingular, ThirdSingular,
		FirstPlural, SecondPlural, ThirdPlural,
	}
}

// Index returns the person's position in paradigm ending tables,
// or -1 for an unrecognized person.
func (p Person) Index() int {
	switch p {
	case FirstSingular:
		return 0
	case SecondSingular:
		return 1
	case ThirdSingular:
		return 2
	case FirstPlural:
		return 3
	case SecondPlural:
		return 4
	case ThirdPlural:
		return 5
	default:
		return -1
	}
}

// Pronoun returns the primary subject pronoun for prompt rendering.
func (p Person) Pronoun() string {
	switch p {
	case FirstSingular:
		return "yo"
	case SecondSingular:
		return "tú"
	case ThirdSingular:
		return "él"
	case FirstPlural:
		return "nosotros"
	case SecondPlural:
		return "vosotros"
	case ThirdPlural:
		return "ellos"
	default:
		return ""
	}
}

// Pronouns returns every subject pronoun that indicates this person.
// Used both for prompt variety and for person recovery from prompt text.
func (p Person) Pronouns() []string {
	switch p {
	case FirstSingular:
		return []string{"yo"}
	case SecondSingular:
		return []string{"tú"}
	case ThirdSingular:
		return []string{"él", "ella", "usted"}
	case FirstPlural:
		return []string{"nosotros", "nosotras"}
	case SecondPlural:
		return []string{"vosotros", "vosotras"}
	case ThirdPlural:
		return []string{"ellos", "ellas", "ustedes"}
	default:
		return nil
	}
}

// Label returns a human-readable person label.
func (p Person) Label() string {
	switch p {
	case FirstSingular:
		return "first person singular"
	case SecondSingular:
		return "second person singular"
	case ThirdSingular:
		return "third person singular"
	case FirstPlural:
		return "first person plural"
	case SecondPlural:
		return "second person plural"
	case ThirdPlural:
		return "third person plural"
	default:
		return string(p)
	}
}
