package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrInvalidID   = errors.New("storage: invalid run id")
	ErrCorrupt     = errors.New("storage: malformed series file")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the directory holding the runs.
func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name,omitempty"`
	Model     string             `json:"model"`
	Title     string             `json:"title"`
	Timestamp time.Time          `json:"timestamp"`
	Method    ode.Method         `json:"method"`
	Coupling  ode.Coupling       `json:"coupling"`
	Tn        float64            `json:"tn"`
	Steps     int                `json:"steps"`
	Init      []float64          `json:"init"`
	Limit     float64            `json:"limit,omitempty"`
	Params    map[string]float64 `json:"params,omitempty"`
	Labels    []string           `json:"labels"`
	// Final is omitted when the run did not stay finite.
	Final []float64 `json:"final,omitempty"`
}

// Step returns the step size of the run.
func (m *RunMetadata) Step() float64 {
	if m.Steps <= 0 {
		return 0
	}
	return m.Tn / float64(m.Steps)
}

// Save writes meta and the trajectories of res under a fresh run id.
// Model, title, method, labels and final values are taken from res.
func (s *Store) Save(meta RunMetadata, res *models.Result) (string, error) {
	now := time.Now()
	if err := s.Init(); err != nil {
		return "", err
	}
	id, err := s.reserve(fmt.Sprintf("%s_%d", res.Model, now.UnixNano()))
	if err != nil {
		return "", err
	}
	meta.ID = id
	meta.Model, meta.Title = res.Model, res.Title
	meta.Method, meta.Coupling = res.Method, res.Coupling
	meta.Timestamp = now
	meta.Final = res.Final()
	if !ode.Finite(meta.Final) {
		meta.Final = nil
	}
	meta.Labels = make([]string, len(res.Series))
	for i, sr := range res.Series {
		meta.Labels[i] = sr.Label
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), res); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// reserve creates the run directory, suffixing id until it is unused.
func (s *Store) reserve(id string) (string, error) {
	candidate := id
	for k := 1; ; k++ {
		err := os.Mkdir(filepath.Join(s.baseDir, candidate), 0755)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
		candidate = fmt.Sprintf("%s_%d", id, k)
	}
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSeries(path string, res *models.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	header := []string{"time"}
	for _, sr := range res.Series {
		header = append(header, sr.Label)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, t := range res.Time {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for j, sr := range res.Series {
			v := 0.0
			if i < sr.Len() {
				v = sr.Y[i]
			}
			row[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		if !runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].Timestamp.Before(runs[j].Timestamp)
		}
		return runs[i].ID < runs[j].ID
	})
	return runs, nil
}

func (s *Store) runPath(runID, name string) (string, error) {
	if runID == "" || runID == "." || runID == ".." || filepath.Base(runID) != runID {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, runID)
	}
	return filepath.Join(s.baseDir, runID, name), nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	path, err := s.runPath(runID, metadataFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads the time column and one series per stored label.
func (s *Store) LoadSeries(runID string) ([]float64, []chart.Series, error) {
	path, err := s.runPath(runID, seriesFile)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(records) == 0 || len(records[0]) == 0 || records[0][0] != "time" {
		return nil, nil, fmt.Errorf("%w: missing header", ErrCorrupt)
	}

	header, rows := records[0], records[1:]
	times := make([]float64, len(rows))
	series := make([]chart.Series, len(header)-1)
	for j := range series {
		series[j] = chart.Series{Label: header[j+1], X: times, Y: make([]float64, len(rows))}
	}
	for i, rec := range rows {
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: %v", ErrCorrupt, i+1, err)
			}
			if j == 0 {
				times[i] = v
			} else {
				series[j-1].Y[i] = v
			}
		}
	}
	return times, series, nil
}

// LoadChart returns the stored run as a time-series chart.
func (s *Store) LoadChart(runID string) (*chart.Chart, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	_, series, err := s.LoadSeries(runID)
	if err != nil {
		return nil, err
	}
	return chart.New(fmt.Sprintf("%s (%s)", meta.Title, meta.Method), series...), nil
}

// Remove deletes a run.
func (s *Store) Remove(runID string) error {
	path, err := s.runPath(runID, "")
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return err
	}
	return os.RemoveAll(path)
}
