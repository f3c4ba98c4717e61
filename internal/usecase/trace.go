package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("fc-tournament/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

const (
	attrTournamentID = attribute.Key("tournament.id")
	attrFixtureID    = attribute.Key("fixture.id")
	attrAction       = attribute.Key("completion.action")
)

// startUsecaseSpan opens a child span only when the caller is already traced.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
