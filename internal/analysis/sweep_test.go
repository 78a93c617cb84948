package analysis

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
)

func newGompertz() (models.Model, error) { return models.New("gompertz") }

func TestSweepConverges(t *testing.T) {
	s := Sweep{Param: "k", Min: 1, Max: 3, Points: 3, Transient: 0.9}
	setup := models.Setup{Tn: 30, Steps: 3000, Init: []float64{2}}
	points, err := s.Run(context.Background(), newGompertz, setup, ode.Classic4)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points", len(points))
	}
	for i, p := range points {
		if i > 0 && p.Param <= points[i-1].Param {
			t.Errorf("parameters not ascending: %+v", points)
		}
		if len(p.Values) == 0 {
			t.Fatalf("k = %g: no values", p.Param)
		}
		for _, v := range p.Values {
			if math.Abs(v-p.Param) > 1e-2 {
				t.Errorf("k = %g: settled at %g", p.Param, v)
			}
		}
	}

	c := SweepChart("gompertz", "k", points)
	if len(c.Series) != 2 || c.Series[0].Len() != 3 || c.XLabel != "k" {
		t.Errorf("chart = %+v", c)
	}
}

func TestSweepInvalid(t *testing.T) {
	setup := models.Setup{Tn: 1, Steps: 10, Init: []float64{2}}
	for name, s := range map[string]Sweep{
		"no param":      {Min: 0, Max: 1, Points: 3},
		"one point":     {Param: "k", Min: 0, Max: 1, Points: 1},
		"empty range":   {Param: "k", Min: 1, Max: 1, Points: 3},
		"transient":     {Param: "k", Min: 1, Max: 2, Points: 3, Transient: 1},
		"unknown param": {Param: "zeta", Min: 1, Max: 2, Points: 3},
		"series":        {Param: "k", Min: 1, Max: 2, Points: 2, Series: 4},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Run(context.Background(), newGompertz, setup, ode.Heun2); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDistinct(t *testing.T) {
	got := distinct([]float64{1, 1.00001, 2, 1, 2.5})
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 2.5 {
		t.Errorf("distinct = %v", got)
	}
}
