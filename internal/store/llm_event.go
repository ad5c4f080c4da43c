package store

import (
	"context"
	"fmt"

	"github.com/subjunto/subjunto/ent"
	"github.com/subjunto/subjunto/internal/llm"
)

type llmEventRepo struct {
	client *ent.Client
}

func (r *llmEventRepo) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(ev.Provider).
		SetModel(ev.Model).
		SetPurpose(ev.Purpose).
		SetInputTokens(ev.InputTokens).
		SetOutputTokens(ev.OutputTokens).
		SetLatencyMs(ev.LatencyMs).
		SetEstimatedCost(ev.EstimatedCost).
		SetSuccess(ev.Success).
		SetErrorMessage(ev.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}
