package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "slidesmith"

// GetTracer returns the tracer for the slidesmith service.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// DeckAttributes returns common attributes for deck generation spans.
func DeckAttributes(deckID, audience, presentationType string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("deck.id", deckID),
		attribute.String("deck.audience", audience),
		attribute.String("deck.presentation_type", presentationType),
	}
}

// SlideAttributes returns common attributes for per-slide spans.
func SlideAttributes(slideID, slideType string, priority int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("slide.id", slideID),
		attribute.String("slide.type", slideType),
		attribute.Int("slide.priority", priority),
	}
}

// StartDeckSpan starts a new span for a deck generation request.
func StartDeckSpan(ctx context.Context, deckID, audience, presentationType string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "deck.generate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(DeckAttributes(deckID, audience, presentationType)...),
	)
}

// StartSlideSpan starts a new span for one slide's stage fan-out.
func StartSlideSpan(ctx context.Context, slideID, slideType string, priority int) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, "slide.assemble",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(SlideAttributes(slideID, slideType, priority)...),
	)
}
