// Package binding wires dashboard controls to the outputs that depend on them.
//
// Each output registers the control ids it reads. When a control changes,
// only the outputs subscribed to it are recomputed, and each recompute
// function receives the current selection as an argument instead of reading
// shared state.
package binding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/launchdash/internal/launch"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/launchdash/internal/services/dashboard/binding"

var (
	// ErrInvalidCallback reports a callback with a blank id or no recompute
	// function.
	ErrInvalidCallback = errors.New("invalid callback")
	// ErrDuplicateOutput reports a second callback for an already bound output.
	ErrDuplicateOutput = errors.New("output already bound")
)

// RecomputeFunc derives an output value from the current selection.
type RecomputeFunc[T any] func(ctx context.Context, sel launch.Selection) (T, error)

// Callback subscribes one output to the controls it reads.
type Callback[T any] struct {
	Output    string
	Inputs    []string
	Recompute RecomputeFunc[T]
}

// Result is one recomputed output.
type Result[T any] struct {
	Output string
	Value  T
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	tracer trace.Tracer
}

// WithTracer records recompute spans on tracer instead of the global
// provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// Registry holds callbacks in registration order. It is built once at
// startup and read concurrently afterwards.
type Registry[T any] struct {
	callbacks []Callback[T]
	outputs   map[string]struct{}
	tracer    trace.Tracer
}

// NewRegistry returns an empty registry.
func NewRegistry[T any](opts ...Option) *Registry[T] {
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer(tracerName)
	}
	return &Registry[T]{
		outputs: map[string]struct{}{},
		tracer:  cfg.tracer,
	}
}

// Register adds cb. Output and input ids are trimmed.
func (r *Registry[T]) Register(cb Callback[T]) error {
	cb.Output = strings.TrimSpace(cb.Output)
	if cb.Output == "" {
		return fmt.Errorf("%w: output id is required", ErrInvalidCallback)
	}
	if cb.Recompute == nil {
		return fmt.Errorf("%w: %s has no recompute function", ErrInvalidCallback, cb.Output)
	}
	if len(cb.Inputs) == 0 {
		return fmt.Errorf("%w: %s has no inputs", ErrInvalidCallback, cb.Output)
	}
	inputs := make([]string, 0, len(cb.Inputs))
	for _, input := range cb.Inputs {
		input = strings.TrimSpace(input)
		if input == "" {
			return fmt.Errorf("%w: %s has a blank input id", ErrInvalidCallback, cb.Output)
		}
		inputs = append(inputs, input)
	}
	cb.Inputs = inputs
	if _, exists := r.outputs[cb.Output]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOutput, cb.Output)
	}
	r.outputs[cb.Output] = struct{}{}
	r.callbacks = append(r.callbacks, cb)
	return nil
}

// Outputs lists bound output ids in registration order.
func (r *Registry[T]) Outputs() []string {
	out := make([]string, 0, len(r.callbacks))
	for _, cb := range r.callbacks {
		out = append(out, cb.Output)
	}
	return out
}

// Affected returns the callbacks subscribed to trigger in registration
// order. A blank or unknown trigger selects every callback.
func (r *Registry[T]) Affected(trigger string) []Callback[T] {
	trigger = strings.TrimSpace(trigger)
	affected := make([]Callback[T], 0, len(r.callbacks))
	for _, cb := range r.callbacks {
		if subscribes(cb, trigger) {
			affected = append(affected, cb)
		}
	}
	if len(affected) == 0 {
		return append(affected, r.callbacks...)
	}
	return affected
}

// Dispatch recomputes every output affected by trigger, one after another,
// and stops at the first error.
func (r *Registry[T]) Dispatch(ctx context.Context, trigger string, sel launch.Selection) ([]Result[T], error) {
	affected := r.Affected(trigger)
	results := make([]Result[T], 0, len(affected))
	for _, cb := range affected {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, err := r.recompute(ctx, trigger, cb, sel)
		if err != nil {
			return nil, fmt.Errorf("recompute %s: %w", cb.Output, err)
		}
		results = append(results, Result[T]{Output: cb.Output, Value: value})
	}
	return results, nil
}

func (r *Registry[T]) recompute(ctx context.Context, trigger string, cb Callback[T], sel launch.Selection) (T, error) {
	ctx, span := r.tracer.Start(ctx, "binding.recompute", trace.WithAttributes(
		attribute.String("binding.output", cb.Output),
		attribute.String("binding.trigger", trigger),
		attribute.String("launch.site", sel.Site),
		attribute.Float64("launch.payload.low", sel.Low),
		attribute.Float64("launch.payload.high", sel.High),
	))
	defer span.End()

	value, err := cb.Recompute(ctx, sel)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return value, err
}

func subscribes[T any](cb Callback[T], trigger string) bool {
	for _, input := range cb.Inputs {
		if input == trigger {
			return true
		}
	}
	return false
}
