// Package feedback turns validation verdicts into learner-facing
// explanations. The rule-grounded text is always computable locally; an
// optional provider may elaborate it, and any provider failure degrades
// back to the deterministic text.
package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/llm"
	"github.com/subjunto/subjunto/internal/validator"
)

// Feedback is what the learner sees after submitting an answer.
type Feedback struct {
	// Text is the deterministic, rule-grounded explanation. Never empty.
	Text string

	// Elaboration is the provider's paraphrase, empty when elaboration is
	// disabled, timed out, or failed.
	Elaboration string

	// Tip is an optional study hint from the elaboration.
	Tip string
}

// Explain builds the deterministic explanation from the verdict's error
// kind and the exercise's stored rule note.
func Explain(verdict validator.Verdict, ex *exercise.Exercise) string {
	if verdict.IsCorrect {
		if verdict.MatchedForm != "" && verdict.MatchedForm != ex.Answer {
			return fmt.Sprintf("¡Correcto! %q is an accepted variant of %q.", verdict.MatchedForm, ex.Answer)
		}
		return fmt.Sprintf("¡Correcto! %q is the %s of %s.", ex.Answer, ex.Tense.DisplayName(), ex.Verb)
	}

	var text string
	switch verdict.ErrorKind {
	case validator.KindAccentOnly:
		text = fmt.Sprintf("Almost! Only the accent is off. The correct form is %q.", ex.Answer)
	case validator.KindWrongEnding:
		text = fmt.Sprintf("The stem is right, but the ending does not match the %s in the %s. The correct form is %q.",
			ex.Person.Label(), ex.Tense.DisplayName(), ex.Answer)
	case validator.KindWrongStem:
		text = fmt.Sprintf("The ending is right but the stem is not; watch for stem and spelling changes. The correct form is %q.", ex.Answer)
	case validator.KindWrongMood:
		text = fmt.Sprintf("That is the present indicative, but %q calls for the subjunctive. The correct form is %q.", ex.TriggerPhrase, ex.Answer)
	default:
		text = fmt.Sprintf("The correct form is %q.", ex.Answer)
	}

	if ex.RuleNote != "" {
		text += " " + capitalizeNote(ex.RuleNote) + "."
	}
	return text
}

func capitalizeNote(note string) string {
	runes := []rune(note)
	if len(runes) == 0 {
		return note
	}
	// Rule notes come lowercase from the engine; sentence-case the first
	// letter only, accents are never in initial position.
	if runes[0] >= 'a' && runes[0] <= 'z' {
		runes[0] = runes[0] - 'a' + 'A'
	}
	return string(runes)
}

// elaborationSchema constrains the provider's structured output.
var elaborationSchema = &llm.Schema{
	Name:        "feedback-elaboration",
	Description: "A short elaboration of a Spanish conjugation explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "A friendly two-sentence elaboration of the grammar rule",
			},
			"tip": map[string]any{
				"type":        "string",
				"description": "One short memorization tip",
			},
		},
		"required":             []any{"explanation"},
		"additionalProperties": false,
	},
}

type elaboration struct {
	Explanation string `json:"explanation"`
	Tip         string `json:"tip"`
}

// Generator produces feedback, optionally elaborated by a provider.
type Generator struct {
	provider llm.Provider
	timeout  time.Duration
	log      *zap.Logger
}

// NewGenerator creates a feedback generator. A nil provider disables
// elaboration entirely; timeout bounds each elaboration call.
func NewGenerator(provider llm.Provider, timeout time.Duration, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Generator{provider: provider, timeout: timeout, log: log}
}

// Generate returns feedback for a verdict. The deterministic text is
// always present; elaboration is attempted only for incorrect answers
// and only while the provider is configured and responsive.
func (g *Generator) Generate(ctx context.Context, answer string, verdict validator.Verdict, ex *exercise.Exercise) Feedback {
	fb := Feedback{Text: Explain(verdict, ex)}

	if g.provider == nil || verdict.IsCorrect {
		return fb
	}

	elab, err := g.elaborate(ctx, answer, fb.Text, verdict, ex)
	if err != nil {
		g.log.Debug("feedback elaboration degraded to deterministic text",
			zap.String("exercise", ex.ID),
			zap.Error(err),
		)
		return fb
	}

	fb.Elaboration = elab.Explanation
	fb.Tip = elab.Tip
	return fb
}

func (g *Generator) elaborate(ctx context.Context, answer, deterministic string, verdict validator.Verdict, ex *exercise.Exercise) (*elaboration, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	ctx = llm.WithPurpose(ctx, "feedback-elaboration")

	prompt := fmt.Sprintf(
		"A Spanish learner answered %q to the prompt %q. The correct form is %q (%s, %s of %s). "+
			"The rule-based diagnosis is %q and the baseline explanation is: %s "+
			"Elaborate warmly in one or two sentences without contradicting the diagnosis.",
		answer, ex.Prompt, ex.Answer, ex.Tense.DisplayName(), ex.Person.Label(), ex.Verb,
		verdict.ErrorKind, deterministic,
	)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    "You are a concise, encouraging Spanish grammar tutor.",
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    elaborationSchema,
		MaxTokens: 300,
	})
	if err != nil {
		return nil, err
	}

	var elab elaboration
	if err := json.Unmarshal(resp.Content, &elab); err != nil {
		return nil, fmt.Errorf("parse elaboration: %w", err)
	}
	if elab.Explanation == "" {
		return nil, fmt.Errorf("empty elaboration")
	}
	return &elab, nil
}
