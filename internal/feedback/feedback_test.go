package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/subjunto/subjunto/internal/exercise"
	"github.com/subjunto/subjunto/internal/lexicon"
	"github.com/subjunto/subjunto/internal/llm"
	"github.com/subjunto/subjunto/internal/validator"
)

func pensarExercise() *exercise.Exercise {
	return &exercise.Exercise{
		ID:            "ex-1",
		Verb:          "pensar",
		Tense:         lexicon.TensePresentSubjunctive,
		Person:        lexicon.ThirdSingular,
		TriggerPhrase: "Espero que",
		Prompt:        "Espero que él ___ (pensar)",
		Answer:        "piense",
		RuleNote:      "stem change e→ie",
	}
}

func TestExplain_Correct(t *testing.T) {
	got := Explain(validator.Verdict{IsCorrect: true, MatchedForm: "piense"}, pensarExercise())
	if !strings.Contains(got, "¡Correcto!") {
		t.Errorf("Explain = %q, want praise", got)
	}
}

func TestExplain_CorrectAlternate(t *testing.T) {
	ex := &exercise.Exercise{
		Verb:       "hablar",
		Tense:      lexicon.TenseImperfectSubjunctive,
		Person:     lexicon.ThirdSingular,
		Answer:     "hablara",
		Alternates: []string{"hablase"},
	}
	got := Explain(validator.Verdict{IsCorrect: true, MatchedForm: "hablase"}, ex)
	if !strings.Contains(got, `"hablase"`) || !strings.Contains(got, "variant") {
		t.Errorf("Explain = %q, want variant acknowledgment", got)
	}
}

func TestExplain_ErrorKinds(t *testing.T) {
	ex := pensarExercise()

	tests := []struct {
		kind validator.ErrorKind
		want string
	}{
		{validator.KindAccentOnly, "accent"},
		{validator.KindWrongEnding, "ending does not match the third person singular"},
		{validator.KindWrongStem, "stem"},
		{validator.KindWrongMood, "subjunctive"},
		{validator.KindUnclassified, `"piense"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got := Explain(validator.Verdict{ErrorKind: tt.kind}, ex)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Explain(%s) = %q, want substring %q", tt.kind, got, tt.want)
			}
			if !strings.Contains(got, `"piense"`) {
				t.Errorf("Explain(%s) = %q, missing the correct form", tt.kind, got)
			}
		})
	}
}

func TestExplain_IncludesRuleNote(t *testing.T) {
	got := Explain(validator.Verdict{ErrorKind: validator.KindWrongStem}, pensarExercise())
	if !strings.Contains(got, "Stem change e→ie") {
		t.Errorf("Explain = %q, want the rule note folded in", got)
	}
}

func TestGenerate_ElaborationAttached(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"pensar hides an ie in its stressed forms","tip":"think of the boot"}`),
	})
	g := NewGenerator(mock, time.Second, nil)

	fb := g.Generate(context.Background(), "pensa", validator.Verdict{ErrorKind: validator.KindWrongStem}, pensarExercise())
	if fb.Text == "" {
		t.Fatal("deterministic text missing")
	}
	if fb.Elaboration != "pensar hides an ie in its stressed forms" {
		t.Errorf("Elaboration = %q", fb.Elaboration)
	}
	if fb.Tip != "think of the boot" {
		t.Errorf("Tip = %q", fb.Tip)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d", mock.CallCount())
	}
}

func TestGenerate_ProviderFailureDegrades(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock, time.Second, nil)

	fb := g.Generate(context.Background(), "pensa", validator.Verdict{ErrorKind: validator.KindWrongStem}, pensarExercise())
	if fb.Text == "" {
		t.Fatal("deterministic text missing after provider failure")
	}
	if fb.Elaboration != "" {
		t.Errorf("Elaboration = %q, want empty on failure", fb.Elaboration)
	}
}

func TestGenerate_NilProviderSkipsElaboration(t *testing.T) {
	g := NewGenerator(nil, time.Second, nil)

	fb := g.Generate(context.Background(), "pensa", validator.Verdict{ErrorKind: validator.KindWrongEnding}, pensarExercise())
	if fb.Text == "" {
		t.Fatal("deterministic text missing without provider")
	}
	if fb.Elaboration != "" {
		t.Errorf("Elaboration = %q, want empty", fb.Elaboration)
	}
}

func TestGenerate_CorrectAnswerNotElaborated(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, time.Second, nil)

	g.Generate(context.Background(), "piense", validator.Verdict{IsCorrect: true, MatchedForm: "piense"}, pensarExercise())
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for a correct answer", mock.CallCount())
	}
}

func TestGenerate_MalformedElaborationDegrades(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"explanation":""}`)})
	g := NewGenerator(mock, time.Second, nil)

	fb := g.Generate(context.Background(), "pensa", validator.Verdict{ErrorKind: validator.KindWrongStem}, pensarExercise())
	if fb.Elaboration != "" {
		t.Errorf("Elaboration = %q, want empty for an empty explanation", fb.Elaboration)
	}
}
