package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RequestEvent is one recorded provider call.
type RequestEvent struct {
	Provider      string
	Model         string
	Purpose       string
	LatencyMs     int64
	Success       bool
	InputTokens   int
	OutputTokens  int
	EstimatedCost float64
	RequestBody   string
	ResponseBody  string
	ErrorMessage  string
}

// EventRecorder persists request events. The store layer implements it;
// tests use an in-memory fake.
type EventRecorder interface {
	RecordLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider records every provider call as an event. Recording
// failures are logged and swallowed so they never fail the request.
type LoggingProvider struct {
	inner    Provider
	recorder EventRecorder
	log      *zap.Logger
}

// WithLogging wraps a Provider with event recording. A nil recorder
// disables persistence but keeps the structured log line.
func WithLogging(p Provider, recorder EventRecorder, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, recorder: recorder, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	ev := RequestEvent{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
		if cost := LookupCost(resp.Model); cost != nil {
			ev.EstimatedCost = cost.Cost(ev.InputTokens, ev.OutputTokens)
		}
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	l.log.Debug("llm request",
		zap.String("model", ev.Model),
		zap.String("purpose", purpose),
		zap.Duration("latency", latency),
		zap.Bool("success", ev.Success),
	)

	if l.recorder != nil {
		if recErr := l.recorder.RecordLLMRequest(ctx, ev); recErr != nil {
			l.log.Warn("record llm request event", zap.Error(recErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// renderRequest builds a readable transcript of the request for the
// event record.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}
