// Package trace records card sessions as OpenTelemetry spans, one span per
// category visit with an event per completed or deferred task.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Attribute keys, all in the offscreen.* namespace.
const (
	AttrSessionID  = "offscreen.session.id"
	AttrCategory   = "offscreen.category"
	AttrDailyLimit = "offscreen.daily_limit"
	AttrDrawn      = "offscreen.drawn"
	AttrTask       = "offscreen.task"
	AttrCompleted  = "offscreen.completed"
	AttrRemaining  = "offscreen.remaining"
	AttrOutcome    = "offscreen.outcome"
)

// SessionSpan covers one visit to a category's card screen.
// A nil *SessionSpan ignores every call.
type SessionSpan struct {
	span oteltrace.Span
}

// StartSession opens the span for a session.
func (r *Recorder) StartSession(ctx context.Context, sessionID, category string, limit, drawn int) *SessionSpan {
	if r == nil || r.tracer == nil {
		return nil
	}
	_, span := r.tracer.Start(ctx, "session "+category,
		oteltrace.WithAttributes(
			attribute.String(AttrSessionID, sessionID),
			attribute.String(AttrCategory, category),
			attribute.Int(AttrDailyLimit, limit),
			attribute.Int(AttrDrawn, drawn),
		),
	)
	return &SessionSpan{span: span}
}

// TaskEvent records a complete or defer on the span.
func (s *SessionSpan) TaskEvent(name, task string, completed, remaining int) {
	if s == nil {
		return
	}
	s.span.AddEvent(name, oteltrace.WithAttributes(
		attribute.String(AttrTask, task),
		attribute.Int(AttrCompleted, completed),
		attribute.Int(AttrRemaining, remaining),
	))
}

// End closes the span with the session outcome.
func (s *SessionSpan) End(outcome string, completed int) {
	if s == nil {
		return
	}
	s.span.SetAttributes(
		attribute.String(AttrOutcome, outcome),
		attribute.Int(AttrCompleted, completed),
	)
	s.span.End()
}
