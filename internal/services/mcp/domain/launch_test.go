package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/launch"
)

func testDataset() *dataset.Dataset {
	return dataset.New([]launch.Record{
		{Site: "CCAFS LC-40", PayloadMass: 500, Outcome: launch.Failure, BoosterCategory: "v1.0"},
		{Site: "KSC LC-39A", PayloadMass: 2490, Outcome: launch.Success, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMass: 5600, Outcome: launch.Failure, BoosterCategory: "FT"},
		{Site: "VAFB SLC-4E", PayloadMass: 9600, Outcome: launch.Success, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMass: 3136, Outcome: launch.Success, BoosterCategory: "B4"},
	})
}

func floatPtr(v float64) *float64 { return &v }

func TestLaunchSummaryHandler(t *testing.T) {
	t.Parallel()

	_, result, err := LaunchSummaryHandler(testDataset())(context.Background(), nil, LaunchSummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := LaunchSummaryResult{
		Sites:      []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"},
		PayloadMin: 500,
		PayloadMax: 9600,
		Records:    5,
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestSuccessProportionsHandler(t *testing.T) {
	t.Parallel()

	handler := SuccessProportionsHandler(testDataset())
	tests := []struct {
		name  string
		input SuccessProportionsInput
		want  SuccessProportionsResult
	}{
		{
			name:  "defaults to every site",
			input: SuccessProportionsInput{},
			want: SuccessProportionsResult{
				Site:   "ALL",
				Total:  3,
				Slices: []launch.Slice{{Label: "KSC LC-39A", Count: 2}, {Label: "VAFB SLC-4E", Count: 1}},
			},
		},
		{
			name:  "single site",
			input: SuccessProportionsInput{Site: " KSC LC-39A "},
			want: SuccessProportionsResult{
				Site:   "KSC LC-39A",
				Total:  3,
				Slices: []launch.Slice{{Label: "Success", Count: 2}, {Label: "Failure", Count: 1}},
			},
		},
		{
			name:  "unknown site",
			input: SuccessProportionsInput{Site: "Boca Chica"},
			want:  SuccessProportionsResult{Site: "Boca Chica", Slices: []launch.Slice{}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, result, err := handler(context.Background(), nil, tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, result); diff != "" {
				t.Fatalf("proportions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPayloadCorrelationHandler(t *testing.T) {
	t.Parallel()

	handler := PayloadCorrelationHandler(testDataset())

	t.Run("bounds default to the dataset range", func(t *testing.T) {
		t.Parallel()
		_, result, err := handler(context.Background(), nil, PayloadCorrelationInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.PayloadMin != 500 || result.PayloadMax != 9600 {
			t.Fatalf("bounds = %v..%v, want 500..9600", result.PayloadMin, result.PayloadMax)
		}
		if len(result.Points) != 5 {
			t.Fatalf("points = %d, want 5", len(result.Points))
		}
		if diff := cmp.Diff([]string{"v1.0", "FT", "B4"}, result.BoosterCategories); diff != "" {
			t.Fatalf("categories mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("site and range", func(t *testing.T) {
		t.Parallel()
		_, result, err := handler(context.Background(), nil, PayloadCorrelationInput{
			Site:       "KSC LC-39A",
			PayloadMin: floatPtr(2000),
			PayloadMax: floatPtr(4000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []launch.Point{
			{PayloadMass: 2490, Outcome: launch.Success, BoosterCategory: "FT"},
			{PayloadMass: 3136, Outcome: launch.Success, BoosterCategory: "B4"},
		}
		if diff := cmp.Diff(want, result.Points); diff != "" {
			t.Fatalf("points mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		t.Parallel()
		_, result, err := handler(context.Background(), nil, PayloadCorrelationInput{
			PayloadMin: floatPtr(5000),
			PayloadMax: floatPtr(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Points) != 0 || len(result.BoosterCategories) != 0 {
			t.Fatalf("expected no points, got %+v", result)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, _, err := handler(ctx, nil, PayloadCorrelationInput{}); !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	})
}

func TestHandlersRequireDataset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if _, _, err := LaunchSummaryHandler(nil)(ctx, nil, LaunchSummaryInput{}); !errors.Is(err, errDatasetRequired) {
		t.Fatalf("summary err = %v", err)
	}
	if _, _, err := SuccessProportionsHandler(nil)(ctx, nil, SuccessProportionsInput{}); !errors.Is(err, errDatasetRequired) {
		t.Fatalf("proportions err = %v", err)
	}
	if _, _, err := PayloadCorrelationHandler(nil)(ctx, nil, PayloadCorrelationInput{}); !errors.Is(err, errDatasetRequired) {
		t.Fatalf("correlation err = %v", err)
	}
}
