package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"counterapp/internal/counter"
)

// Span and attribute names
const (
	SpanChange     = "counter.change"
	EventCelebrate = "celebrate"

	AttrInstance = "counter.instance"
	AttrPrevious = "counter.previous"
	AttrValue    = "counter.value"
	AttrAtMin    = "counter.at_min"
	AttrAtMax    = "counter.at_max"
	AttrTarget   = "counter.target"
)

// Observer implements counter.Observer and records one span per transition.
type Observer struct {
	tracer   oteltrace.Tracer
	instance string
	target   int
}

// Ensure Observer implements counter.Observer.
var _ counter.Observer = (*Observer)(nil)

// NewObserver creates an Observer for one widget instance.
// A nil tracer records nothing.
func NewObserver(tracer oteltrace.Tracer, instance string, target int) *Observer {
	return &Observer{tracer: tracer, instance: instance, target: target}
}

// OnChange implements counter.Observer.
func (o *Observer) OnChange(c counter.Change) {
	if o == nil || o.tracer == nil {
		return
	}
	_, span := o.tracer.Start(context.Background(), SpanChange,
		oteltrace.WithAttributes(
			attribute.String(AttrInstance, o.instance),
			attribute.Int(AttrPrevious, c.Previous),
			attribute.Int(AttrValue, c.Current),
			attribute.Bool(AttrAtMin, c.Flags.AtMin),
			attribute.Bool(AttrAtMax, c.Flags.AtMax),
		),
	)
	defer span.End()

	if counter.ShouldCelebrate(c.Previous, c.Current, o.target) {
		span.AddEvent(EventCelebrate, oteltrace.WithAttributes(
			attribute.Int(AttrTarget, o.target),
		))
	}
}
