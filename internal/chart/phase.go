package chart

import "fmt"

// Phase returns the phase-plane chart of a against b: a on the x axis,
// b on the y axis, one point per shared time sample.
func Phase(title string, a, b Series) (*Chart, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("chart: phase series %q and %q differ in length (%d, %d)", a.Label, b.Label, a.Len(), b.Len())
	}
	if a.Len() == 0 {
		return nil, ErrNoSeries
	}
	return &Chart{
		Title:  title,
		XLabel: a.Label,
		YLabel: b.Label,
		Series: []Series{{
			Label: fmt.Sprintf("%s vs %s", b.Label, a.Label),
			X:     a.Y,
			Y:     b.Y,
		}},
	}, nil
}
