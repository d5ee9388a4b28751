package binding

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/launchdash/internal/launch"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const (
	siteInput    = "site-dropdown"
	payloadInput = "payload-slider"
	pieOutput    = "success-pie-chart"
	scatterOut   = "success-payload-scatter-chart"
)

func echo(output string) RecomputeFunc[string] {
	return func(_ context.Context, sel launch.Selection) (string, error) {
		return output + ":" + sel.Site, nil
	}
}

func dashboardRegistry(t *testing.T, opts ...Option) *Registry[string] {
	t.Helper()
	r := NewRegistry[string](opts...)
	if err := r.Register(Callback[string]{Output: pieOutput, Inputs: []string{siteInput}, Recompute: echo("pie")}); err != nil {
		t.Fatalf("register pie: %v", err)
	}
	if err := r.Register(Callback[string]{Output: scatterOut, Inputs: []string{siteInput, payloadInput}, Recompute: echo("scatter")}); err != nil {
		t.Fatalf("register scatter: %v", err)
	}
	return r
}

func outputs(callbacks []Callback[string]) []string {
	out := make([]string, 0, len(callbacks))
	for _, cb := range callbacks {
		out = append(out, cb.Output)
	}
	return out
}

func TestAffected(t *testing.T) {
	t.Parallel()

	r := dashboardRegistry(t)
	tests := []struct {
		trigger string
		want    []string
	}{
		{siteInput, []string{pieOutput, scatterOut}},
		{payloadInput, []string{scatterOut}},
		{" payload-slider ", []string{scatterOut}},
		{"", []string{pieOutput, scatterOut}},
		{"unknown-control", []string{pieOutput, scatterOut}},
	}
	for _, tc := range tests {
		t.Run(tc.trigger, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, outputs(r.Affected(tc.trigger))); diff != "" {
				t.Fatalf("Affected(%q) mismatch (-want +got):\n%s", tc.trigger, diff)
			}
		})
	}
}

func TestDispatchPassesSelectionExplicitly(t *testing.T) {
	t.Parallel()

	r := dashboardRegistry(t)
	sel := launch.Selection{Site: "KSC LC-39A", Low: 0, High: 10000}

	got, err := r.Dispatch(context.Background(), payloadInput, sel)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	want := []Result[string]{{Output: scatterOut, Value: "scatter:KSC LC-39A"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Dispatch() mismatch (-want +got):\n%s", diff)
	}

	got, err = r.Dispatch(context.Background(), siteInput, launch.Selection{Site: launch.AllSites})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	want = []Result[string]{
		{Output: pieOutput, Value: "pie:ALL"},
		{Output: scatterOut, Value: "scatter:ALL"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Dispatch() mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchStopsAtFirstError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	r := NewRegistry[string]()
	mustRegister(t, r, Callback[string]{Output: "first", Inputs: []string{siteInput}, Recompute: func(context.Context, launch.Selection) (string, error) {
		calls++
		return "", boom
	}})
	mustRegister(t, r, Callback[string]{Output: "second", Inputs: []string{siteInput}, Recompute: func(context.Context, launch.Selection) (string, error) {
		calls++
		return "ok", nil
	}})

	_, err := r.Dispatch(context.Background(), siteInput, launch.Selection{Site: launch.AllSites})
	if !errors.Is(err, boom) {
		t.Fatalf("Dispatch() error = %v, want %v", err, boom)
	}
	if calls != 1 {
		t.Fatalf("recompute calls = %d, want 1", calls)
	}
}

func TestDispatchHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	r := dashboardRegistry(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Dispatch(ctx, siteInput, launch.Selection{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Dispatch() error = %v, want context.Canceled", err)
	}
}

func TestRegisterRejectsInvalidCallbacks(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cb   Callback[string]
		want error
	}{
		"blank output":   {Callback[string]{Output: " ", Inputs: []string{siteInput}, Recompute: echo("x")}, ErrInvalidCallback},
		"nil recompute":  {Callback[string]{Output: "x", Inputs: []string{siteInput}}, ErrInvalidCallback},
		"no inputs":      {Callback[string]{Output: "x", Recompute: echo("x")}, ErrInvalidCallback},
		"blank input":    {Callback[string]{Output: "x", Inputs: []string{siteInput, ""}, Recompute: echo("x")}, ErrInvalidCallback},
		"duplicate pie":  {Callback[string]{Output: pieOutput, Inputs: []string{payloadInput}, Recompute: echo("x")}, ErrDuplicateOutput},
		"padded dupe id": {Callback[string]{Output: " " + scatterOut, Inputs: []string{siteInput}, Recompute: echo("x")}, ErrDuplicateOutput},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := dashboardRegistry(t)
			if err := r.Register(tc.cb); !errors.Is(err, tc.want) {
				t.Fatalf("Register() error = %v, want %v", err, tc.want)
			}
			if diff := cmp.Diff([]string{pieOutput, scatterOut}, r.Outputs()); diff != "" {
				t.Fatalf("Outputs() changed after rejected register (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDispatchRecordsSpanPerOutput(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	r := dashboardRegistry(t, WithTracer(provider.Tracer("test")))

	sel := launch.Selection{Site: "CCAFS LC-40", Low: 1000, High: math.Inf(1)}
	if _, err := r.Dispatch(context.Background(), siteInput, sel); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	var got []string
	for _, span := range spans {
		for _, attr := range span.Attributes() {
			if attr.Key == "binding.output" {
				got = append(got, attr.Value.AsString())
			}
		}
	}
	if diff := cmp.Diff([]string{pieOutput, scatterOut}, got); diff != "" {
		t.Fatalf("span outputs mismatch (-want +got):\n%s", diff)
	}
}

func mustRegister(t *testing.T, r *Registry[string], cb Callback[string]) {
	t.Helper()
	if err := r.Register(cb); err != nil {
		t.Fatalf("Register(%s) error = %v", cb.Output, err)
	}
}
