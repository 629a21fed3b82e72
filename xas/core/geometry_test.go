package core

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultGeometry(t *testing.T) {
	geo := DefaultGeometry()

	if geo.Incident != math.Pi/4 || geo.Exit != math.Pi/4 {
		t.Fatalf("unexpected default angles: %+v", geo)
	}

	if geo.Ratio() != 1 {
		t.Fatalf("default ratio: got %v, want 1", geo.Ratio())
	}
}

func TestApplyGeometryOptions_NoneGivesDefault(t *testing.T) {
	geo := ApplyGeometryOptions()

	if geo != DefaultGeometry() {
		t.Fatalf("no options: got %+v, want default", geo)
	}
}

func TestApplyGeometryOptions_WithAngles(t *testing.T) {
	geo := ApplyGeometryOptions(WithAngles(math.Pi/6, math.Pi/3))

	want := math.Sin(math.Pi/6) / math.Sin(math.Pi/3)
	if got := geo.Ratio(); math.Abs(got-want) > 1e-15 {
		t.Fatalf("ratio: got %v, want %v", got, want)
	}
}

func TestApplyGeometryOptions_WithAnglesDeg(t *testing.T) {
	geo := ApplyGeometryOptions(WithAnglesDeg(30, 60))

	if math.Abs(geo.Incident-math.Pi/6) > 1e-15 {
		t.Fatalf("incident: got %v, want %v", geo.Incident, math.Pi/6)
	}

	if math.Abs(geo.Exit-math.Pi/3) > 1e-15 {
		t.Fatalf("exit: got %v, want %v", geo.Exit, math.Pi/3)
	}
}

func TestApplyGeometryOptions_NilOptionIgnored(t *testing.T) {
	geo := ApplyGeometryOptions(nil)

	if geo != DefaultGeometry() {
		t.Fatalf("nil option: got %+v, want default", geo)
	}
}

func TestGeometryValidate(t *testing.T) {
	cases := []struct {
		name    string
		geo     Geometry
		wantErr bool
	}{
		{"default", DefaultGeometry(), false},
		{"grazing", Geometry{Incident: 0.01, Exit: math.Pi / 2}, false},
		{"zero incident", Geometry{Incident: 0, Exit: math.Pi / 4}, true},
		{"pi incident", Geometry{Incident: math.Pi, Exit: math.Pi / 4}, true},
		{"negative exit", Geometry{Incident: math.Pi / 4, Exit: -math.Pi / 4}, true},
		{"nan angle", Geometry{Incident: math.NaN(), Exit: math.Pi / 4}, true},
		{"inf angle", Geometry{Incident: math.Pi / 4, Exit: math.Inf(1)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.geo.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %+v", tc.geo)
			}

			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.wantErr && !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("error kind: got %v, want ErrInsufficientData", err)
			}
		})
	}
}
