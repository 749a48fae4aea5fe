package tween_test

import (
	"testing"

	"github.com/matt-g-everett/ledtween/tween"
)

func TestParseCurve(t *testing.T) {
	cases := []struct {
		name    string
		curve   string
		wantErr bool
	}{
		{"linear", "linear", false},
		{"in_out_quad", "in-out-quad", false},
		{"out_elastic", "out-elastic", false},
		{"unknown", "wobble", true},
		{"empty", "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			curve, err := tween.ParseCurve(c.curve)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error for curve %q", c.curve)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for curve %q: %v", c.curve, err)
			}
			if curve == nil {
				t.Fatalf("expected a curve for %q", c.curve)
			}
		})
	}
}

func TestCurveEndpoints(t *testing.T) {
	// The polynomial and sine families map the timeline endpoints onto
	// themselves. (Elastic and expo only approach them.)
	names := []string{
		"linear", "in-quad", "out-quad", "in-out-quad",
		"in-cubic", "out-cubic", "in-out-cubic", "in-out-sine",
	}
	for _, name := range names {
		curve, err := tween.ParseCurve(name)
		if err != nil {
			t.Fatalf("unknown curve %q", name)
		}
		if got := curve(0); !approxEq(got, 0) {
			t.Fatalf("curve %q: expected f(0)=0, got %f", name, got)
		}
		if got := curve(1); !approxEq(got, 1) {
			t.Fatalf("curve %q: expected f(1)=1, got %f", name, got)
		}
	}
}

func TestCurveNamesSorted(t *testing.T) {
	names := tween.CurveNames()
	if len(names) == 0 {
		t.Fatalf("expected a populated curve registry")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("curve names must be sorted and unique, got %q before %q", names[i-1], names[i])
		}
	}
}

func TestDefaultCurve(t *testing.T) {
	if got := tween.DefaultCurve(0.5); !approxEq(got, 0.5) {
		t.Fatalf("in-out easing should pass through the midpoint, got %f", got)
	}
	if got := tween.DefaultCurve(0.25); got >= 0.25 {
		t.Fatalf("ease-in half should lag linear progress, got %f", got)
	}
}
