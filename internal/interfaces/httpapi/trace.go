package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fc-tournament/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// Route parameters copied onto handler spans.
var spanPathValues = []struct {
	param string
	key   attribute.Key
}{
	{param: "tournamentID", key: "tournament.id"},
	{param: "fixtureID", key: "fixture.id"},
	{param: "teamID", key: "team.id"},
}

// startSpan only opens spans for handlers and only below an existing request
// span, so filtered routes such as /healthz never create root spans.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func startRequestSpan(r *http.Request, name string) (context.Context, trace.Span) {
	return startSpan(r.Context(), name, requestSpanAttributes(r)...)
}

func requestSpanAttributes(r *http.Request) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(spanPathValues)+1)
	for _, item := range spanPathValues {
		if value := strings.TrimSpace(r.PathValue(item.param)); value != "" {
			attrs = append(attrs, item.key.String(value))
		}
	}
	if principal, ok := principalFromContext(r.Context()); ok {
		attrs = append(attrs, attribute.Int64("account.id", principal.AccountID))
	}
	return attrs
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
