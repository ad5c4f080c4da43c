// Package conjugator derives Spanish subjunctive forms from the lexicon and
// the paradigm rules. Conjugation is a pure function of immutable reference
// data: the same request always yields the same result, and the package is
// safe for unbounded concurrent use.
package conjugator

import (
	"fmt"
	"strings"

	"github.com/subjunto/subjunto/internal/lexicon"
)

// Result is the engine's output for one (verb, tense, person) request.
type Result struct {
	Infinitive string
	Tense      lexicon.Tense
	Person     lexicon.Person

	// Canonical is the preferred surface form for display.
	Canonical string

	// Alternates are additional accepted forms (the -se imperfect
	// variant, compound forms built on it).
	Alternates []string

	// Stem and Ending are the surface split of the canonical form for
	// simple tenses, used by mismatch classification and hints. Both are
	// empty for override forms and compound tenses, where no rule-derived
	// split exists.
	Stem   string
	Ending string

	// RuleNote is a human-readable explanation of how the form was built,
	// used verbatim by feedback and hints.
	RuleNote string
}

// Accepted returns the canonical form followed by every alternate.
func (r *Result) Accepted() []string {
	return append([]string{r.Canonical}, r.Alternates...)
}

// Conjugate produces the form(s) for a verb, tense and person. It is total
// over the lexicon: an unknown verb or unsupported combination is an error,
// never a guessed form.
func Conjugate(infinitive string, tense lexicon.Tense, person lexicon.Person) (*Result, error) {
	v, ok := lexicon.Get(infinitive)
	if !ok {
		return nil, &UnknownVerbError{Infinitive: infinitive}
	}

	idx := person.Index()
	if idx < 0 {
		return nil, &UnsupportedFormError{Infinitive: infinitive, Tense: tense, Person: person, Reason: "unknown person slot"}
	}

	switch tense {
	case lexicon.TensePresentSubjunctive:
		return presentSubjunctive(v, person, idx)
	case lexicon.TenseImperfectSubjunctive:
		return imperfectSubjunctive(v, person, idx)
	case lexicon.TensePresentPerfectSubjunctive, lexicon.TensePluperfectSubjunctive:
		return compound(v, tense, person)
	case lexicon.TensePresentIndicative:
		return presentIndicative(v, person, idx)
	default:
		return nil, &UnsupportedFormError{Infinitive: infinitive, Tense: tense, Person: person, Reason: "tense not supported"}
	}
}

func presentSubjunctive(v *lexicon.Verb, person lexicon.Person, idx int) (*Result, error) {
	if form, ok := v.Override(lexicon.TensePresentSubjunctive, person); ok {
		return &Result{
			Infinitive: v.Infinitive,
			Tense:      lexicon.TensePresentSubjunctive,
			Person:     person,
			Canonical:  form,
			RuleNote:   "irregular form, learned as vocabulary",
		}, nil
	}

	class := v.EndingClass()
	endings, ok := presentSubjunctiveEndings[class]
	if !ok {
		return nil, &UnsupportedFormError{Infinitive: v.Infinitive, Tense: lexicon.TensePresentSubjunctive, Person: person, Reason: "unrecognized conjugation class"}
	}
	ending := endings[idx]

	var notes []string
	var stem string

	// The subjunctive stem comes from the yo form. An irregular yo form
	// carries through every person; otherwise the infinitive stem is used
	// and the stem-change pattern applies per person.
	if v.YoPresent != "" {
		if !strings.HasSuffix(v.YoPresent, "o") {
			return nil, &UnsupportedFormError{
				Infinitive: v.Infinitive,
				Tense:      lexicon.TensePresentSubjunctive,
				Person:     person,
				Reason:     fmt.Sprintf("yo-form %q does not end in -o and no override is declared", v.YoPresent),
			}
		}
		stem = strings.TrimSuffix(v.YoPresent, "o")
		notes = append(notes, fmt.Sprintf("stem from the irregular yo form %q", v.YoPresent))
	} else {
		stem = v.Stem()
		changed, note := applyStemChange(stem, v, lexicon.TensePresentSubjunctive, idx)
		if note != "" {
			notes = append(notes, note+" in the present subjunctive")
		}
		stem = changed
	}

	// Spelling rules run after stem substitution, on the resulting cluster.
	adjusted, note := adjustSpelling(v, stem, ending)
	if note != "" {
		notes = append(notes, note)
	}
	stem = adjusted

	if len(notes) == 0 {
		notes = append(notes, fmt.Sprintf("regular %s verb: opposite-vowel %s endings", "-"+class, subjunctiveVowel(class)))
	}

	return &Result{
		Infinitive: v.Infinitive,
		Tense:      lexicon.TensePresentSubjunctive,
		Person:     person,
		Canonical:  stem + ending,
		Stem:       stem,
		Ending:     ending,
		RuleNote:   strings.Join(notes, "; "),
	}, nil
}

func imperfectSubjunctive(v *lexicon.Verb, person lexicon.Person, idx int) (*Result, error) {
	if form, ok := v.Override(lexicon.TenseImperfectSubjunctive, person); ok {
		return &Result{
			Infinitive: v.Infinitive,
			Tense:      lexicon.TenseImperfectSubjunctive,
			Person:     person,
			Canonical:  form,
			RuleNote:   "irregular form, learned as vocabulary",
		}, nil
	}

	base := v.PreteriteThirdPlural
	irregularBase := base != ""
	if base == "" {
		suffix, ok := regularPreteriteThirdPlural[v.EndingClass()]
		if !ok {
			return nil, &UnsupportedFormError{Infinitive: v.Infinitive, Tense: lexicon.TenseImperfectSubjunctive, Person: person, Reason: "unrecognized conjugation class"}
		}
		base = v.Stem() + suffix
	}
	if !strings.HasSuffix(base, "ron") {
		return nil, &UnsupportedFormError{
			Infinitive: v.Infinitive,
			Tense:      lexicon.TenseImperfectSubjunctive,
			Person:     person,
			Reason:     fmt.Sprintf("preterite base %q does not end in -ron", base),
		}
	}

	stem := strings.TrimSuffix(base, "ron")
	if idx == lexicon.FirstPlural.Index() {
		stem = accentLastVowel(stem)
	}

	note := fmt.Sprintf("stem from the ellos preterite %q; the -ra and -se endings are equivalent", base)
	if irregularBase {
		note = fmt.Sprintf("irregular preterite stem from %q; the -ra and -se endings are equivalent", base)
	}

	return &Result{
		Infinitive: v.Infinitive,
		Tense:      lexicon.TenseImperfectSubjunctive,
		Person:     person,
		Canonical:  stem + imperfectRaEndings[idx],
		Alternates: []string{stem + imperfectSeEndings[idx]},
		Stem:       stem,
		Ending:     imperfectRaEndings[idx],
		RuleNote:   note,
	}, nil
}

func compound(v *lexicon.Verb, tense lexicon.Tense, person lexicon.Person) (*Result, error) {
	auxTense := lexicon.TensePresentSubjunctive
	if tense == lexicon.TensePluperfectSubjunctive {
		auxTense = lexicon.TenseImperfectSubjunctive
	}

	aux, err := Conjugate("haber", auxTense, person)
	if err != nil {
		return nil, fmt.Errorf("conjugate auxiliary: %w", err)
	}

	part, irregular := Participle(v)

	note := fmt.Sprintf("haber in the %s + past participle %q", strings.ToLower(auxTense.DisplayName()), part)
	if irregular {
		note += " (irregular participle)"
	}

	res := &Result{
		Infinitive: v.Infinitive,
		Tense:      tense,
		Person:     person,
		Canonical:  aux.Canonical + " " + part,
		RuleNote:   note,
	}
	for _, alt := range aux.Alternates {
		res.Alternates = append(res.Alternates, alt+" "+part)
	}
	return res, nil
}

func presentIndicative(v *lexicon.Verb, person lexicon.Person, idx int) (*Result, error) {
	if form, ok := v.Override(lexicon.TensePresentIndicative, person); ok {
		return &Result{Infinitive: v.Infinitive, Tense: lexicon.TensePresentIndicative, Person: person, Canonical: form}, nil
	}
	if idx == 0 && v.YoPresent != "" {
		return &Result{Infinitive: v.Infinitive, Tense: lexicon.TensePresentIndicative, Person: person, Canonical: v.YoPresent}, nil
	}

	class := v.EndingClass()
	endings, ok := presentIndicativeEndings[class]
	if !ok {
		return nil, &UnsupportedFormError{Infinitive: v.Infinitive, Tense: lexicon.TensePresentIndicative, Person: person, Reason: "unrecognized conjugation class"}
	}
	ending := endings[idx]

	stem, _ := applyStemChange(v.Stem(), v, lexicon.TensePresentIndicative, idx)
	stem, _ = adjustSpelling(v, stem, ending)

	return &Result{
		Infinitive: v.Infinitive,
		Tense:      lexicon.TensePresentIndicative,
		Person:     person,
		Canonical:  stem + ending,
	}, nil
}

func subjunctiveVowel(class string) string {
	if class == "ar" {
		return "-e"
	}
	return "-a"
}
