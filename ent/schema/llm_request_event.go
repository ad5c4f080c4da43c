package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every provider call for cost tracking and
// debugging of feedback elaboration.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Actual model ID that served the request"),
		field.String("purpose").
			Comment("Consumer-provided label, e.g. feedback-elaboration"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Float("estimated_cost").
			Default(0).
			Comment("USD estimate from the embedded pricing table"),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("timestamp"),
	}
}
