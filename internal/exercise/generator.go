// Package exercise generates practice items from the lexicon and the
// conjugation engine. Generation is gated by engine support: an exercise
// is only emitted when the engine produced its answer, so stored answers
// can never drift from live conjugation.
package exercise

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/subjunto/subjunto/internal/conjugator"
	"github.com/subjunto/subjunto/internal/lexicon"
)

// Config controls sampling behavior.
type Config struct {
	// MaxAttempts bounds candidate sampling before Generate gives up.
	MaxAttempts int

	// DueWeight is how many sampling tickets a due verb receives; other
	// eligible verbs receive one.
	DueWeight int
}

// DefaultConfig returns the recommended sampling configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 64,
		DueWeight:   4,
	}
}

// Generator produces exercises. Safe for concurrent use; the random
// source is guarded.
type Generator struct {
	cfg Config
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source; tests
// pass a fixed seed for determinism.
func New(rng *rand.Rand, cfg Config) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.DueWeight <= 0 {
		cfg.DueWeight = DefaultConfig().DueWeight
	}
	return &Generator{cfg: cfg, rng: rng, now: time.Now}
}

// Generate samples a (verb, tense, person) combination satisfying the
// criteria and renders a prompt with trigger phrase and hints.
func (g *Generator) Generate(criteria Criteria) (*Exercise, error) {
	verbs := g.eligibleVerbs(criteria)
	if len(verbs) == 0 {
		return nil, fmt.Errorf("no verbs satisfy the criteria")
	}
	tenses := eligibleTenses(criteria)
	if len(tenses) == 0 {
		return nil, fmt.Errorf("no tenses satisfy the criteria")
	}

	recent := make(map[Combo]bool, len(criteria.Recent))
	for _, c := range criteria.Recent {
		recent[c] = true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	persons := lexicon.AllPersons()
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		v := verbs[g.rng.Intn(len(verbs))]
		tense := tenses[g.rng.Intn(len(tenses))]
		person := persons[g.rng.Intn(len(persons))]

		difficulty := Difficulty(v, tense)
		if criteria.MaxDifficulty > 0 && difficulty > criteria.MaxDifficulty {
			continue
		}
		if recent[Combo{Verb: v.Infinitive, Tense: tense, Person: person}] {
			continue
		}

		res, err := conjugator.Conjugate(v.Infinitive, tense, person)
		if err != nil {
			// Engine support gates generation; skip the combo rather
			// than emit an unanswerable exercise.
			continue
		}

		return g.build(v, res, difficulty), nil
	}

	return nil, fmt.Errorf("no candidate found after %d attempts", g.cfg.MaxAttempts)
}

// eligibleVerbs resolves the verb filter against the lexicon and expands
// due verbs into extra sampling tickets.
func (g *Generator) eligibleVerbs(criteria Criteria) []*lexicon.Verb {
	var base []*lexicon.Verb
	if len(criteria.Verbs) == 0 {
		base = lexicon.All()
	} else {
		for _, inf := range criteria.Verbs {
			if v, ok := lexicon.Get(inf); ok {
				base = append(base, v)
			}
		}
	}

	due := make(map[string]bool, len(criteria.Due))
	for _, inf := range criteria.Due {
		due[inf] = true
	}
	if len(due) == 0 {
		return base
	}

	weighted := make([]*lexicon.Verb, 0, len(base))
	for _, v := range base {
		weighted = append(weighted, v)
		if due[v.Infinitive] {
			for i := 1; i < g.cfg.DueWeight; i++ {
				weighted = append(weighted, v)
			}
		}
	}
	return weighted
}

func eligibleTenses(criteria Criteria) []lexicon.Tense {
	if len(criteria.Tenses) == 0 {
		return lexicon.PracticeTenses()
	}
	practice := make(map[lexicon.Tense]bool)
	for _, t := range lexicon.PracticeTenses() {
		practice[t] = true
	}
	var out []lexicon.Tense
	for _, t := range criteria.Tenses {
		if practice[t] {
			out = append(out, t)
		}
	}
	return out
}

func (g *Generator) build(v *lexicon.Verb, res *conjugator.Result, difficulty int) *Exercise {
	triggers := triggerPhrases[res.Tense]
	trigger := triggers[g.rng.Intn(len(triggers))]

	pronouns := res.Person.Pronouns()
	pronoun := pronouns[g.rng.Intn(len(pronouns))]

	prompt := fmt.Sprintf("%s %s ___ (%s)", trigger, pronoun, v.Infinitive)

	hints := []string{fmt.Sprintf("%s means %q", v.Infinitive, v.English)}
	if res.RuleNote != "" {
		hints = append(hints, res.RuleNote)
	}
	hints = append(hints, fmt.Sprintf("use the %s form, the one that goes with %q", res.Person.Label(), pronoun))

	return &Exercise{
		ID:            uuid.NewString(),
		Verb:          v.Infinitive,
		Tense:         res.Tense,
		Person:        res.Person,
		TriggerPhrase: trigger,
		Prompt:        prompt,
		Answer:        res.Canonical,
		Alternates:    res.Alternates,
		RuleNote:      res.RuleNote,
		Difficulty:    difficulty,
		Hints:         hints,
		CreatedAt:     g.now(),
	}
}
