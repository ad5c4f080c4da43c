package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

type memRecorder struct {
	mu     sync.Mutex
	events []RequestEvent
	err    error
}

func (m *memRecorder) RecordLLMRequest(_ context.Context, ev RequestEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, ev)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	rec := &memRecorder{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"explanation":"ok"}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	p := WithLogging(mock, rec, nil)

	ctx := WithPurpose(context.Background(), "feedback-elaboration")
	if _, err := p.Generate(ctx, Request{System: "explain mistakes"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if !ev.Success {
		t.Error("Success = false")
	}
	if ev.Purpose != "feedback-elaboration" {
		t.Errorf("Purpose = %q", ev.Purpose)
	}
	if ev.InputTokens != 10 || ev.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	rec := &memRecorder{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	p := WithLogging(mock, rec, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	if rec.events[0].Success {
		t.Error("Success = true for a failed request")
	}
	if rec.events[0].ErrorMessage == "" {
		t.Error("ErrorMessage empty for a failed request")
	}
}

func TestLogging_RecorderErrorDoesNotFailRequest(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, rec, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate failed because of the recorder: %v", err)
	}
}
