package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/odelab/internal/chart"
)

type ExportSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type ExportData struct {
	RunMetadata
	Times  []float64      `json:"times"`
	Series []ExportSeries `json:"series"`
}

// ExportJSON writes the metadata and trajectories of a stored run.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}
	return WriteJSON(w, *meta, times, series)
}

// WriteJSON encodes a run as indented JSON. Non-finite values are not
// representable in JSON and make the encoder fail.
func WriteJSON(w io.Writer, meta RunMetadata, times []float64, series []chart.Series) error {
	data := ExportData{
		RunMetadata: meta,
		Times:       times,
		Series:      make([]ExportSeries, len(series)),
	}
	for i, s := range series {
		data.Series[i] = ExportSeries{Label: s.Label, Values: s.Y}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
