package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("matchday/internal/interfaces/httpapi")

// startSpan opens a child span for a handler step. When the request came in
// on a filtered route (see shouldTraceRequest) there is no recording parent,
// and a fresh root span here would show up as an orphan trace, so the ambient
// span is kept instead. Only handler-level names get their own span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !strings.HasPrefix(name, "httpapi.Handler.") {
		return ctx, parent
	}
	return apiTracer.Start(ctx, name)
}
