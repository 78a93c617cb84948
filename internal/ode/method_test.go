package ode

import (
	"errors"
	"testing"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"euler", ForwardEuler},
		{"Forward_Euler", ForwardEuler},
		{" rk4 ", Classic4},
		{"classic4", Classic4},
		{"rk38", ThreeEighths},
		{"3/8", ThreeEighths},
		{"heun", Heun2},
		{"SSPRK3", SSPRK3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if err != nil {
				t.Fatalf("ParseMethod(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseMethod("dopri5"); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("ParseMethod(dopri5) error = %v, want ErrUnknownMethod", err)
	}
}

func TestMethodRoundTrip(t *testing.T) {
	for _, m := range Methods() {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		var back Method
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) error = %v", text, err)
		}
		if back != m {
			t.Errorf("round trip %v -> %s -> %v", m, text, back)
		}
	}
}

func TestInvalidMethod(t *testing.T) {
	m := Method(-1)
	if m.String() == "" {
		t.Error("String() of invalid method is empty")
	}
	if _, err := m.Tableau(); !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("Tableau() error = %v, want ErrUnknownMethod", err)
	}
	if _, err := m.MarshalText(); err == nil {
		t.Error("MarshalText() of invalid method succeeded")
	}
}

func TestParseCoupling(t *testing.T) {
	for in, want := range map[string]Coupling{
		"":             Staggered,
		"staggered":    Staggered,
		"simultaneous": Simultaneous,
		"symmetric":    Simultaneous,
	} {
		got, err := ParseCoupling(in)
		if err != nil || got != want {
			t.Errorf("ParseCoupling(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseCoupling("jacobi"); err == nil {
		t.Error("ParseCoupling(jacobi) succeeded")
	}
	if got := NewSolver2(Classic4).Coupling(); got != Staggered {
		t.Errorf("default coupling = %v, want staggered", got)
	}
}
