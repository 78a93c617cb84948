package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
)

func testResult() *models.Result {
	t := []float64{0, 0.5, 1}
	return &models.Result{
		Model:    "test",
		Title:    "Test Model",
		Method:   ode.Classic4,
		Coupling: ode.Simultaneous,
		Time:     t,
		Series: []chart.Series{
			{Label: "prey", X: t, Y: []float64{1, 0.1 + 0.2, 1.0 / 3}},
			{Label: "predator", X: t, Y: []float64{2, 2.5, 1e-17}},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{Tn: 1, Steps: 2, Init: []float64{1, 2}, Params: map[string]float64{"alpha": 1.5}}
	runID, err := st.Save(meta, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	got, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Model != "test" || got.Method != ode.Classic4 || got.Coupling != ode.Simultaneous {
		t.Errorf("unexpected metadata %+v", got)
	}
	if got.Params["alpha"] != 1.5 || got.Step() != 0.5 {
		t.Errorf("params = %v, step = %g", got.Params, got.Step())
	}
	if len(got.Final) != 2 || got.Final[1] != 1e-17 {
		t.Errorf("final = %v", got.Final)
	}

	times, series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	want := testResult()
	if len(times) != 3 || times[1] != 0.5 {
		t.Errorf("times = %v", times)
	}
	if len(series) != 2 {
		t.Fatalf("series = %d, want 2", len(series))
	}
	for i, s := range series {
		if s.Label != want.Series[i].Label {
			t.Errorf("label %d = %q", i, s.Label)
		}
		for k, v := range s.Y {
			if v != want.Series[i].Y[k] {
				t.Errorf("series %d[%d] = %v, want %v (bit exact)", i, k, v, want.Series[i].Y[k])
			}
		}
	}

	if _, err := os.Stat(filepath.Join(st.Dir(), runID, "series.csv")); err != nil {
		t.Errorf("series.csv missing: %v", err)
	}
}

func TestStoreList(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "runs"))

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("empty store: runs=%v err=%v", runs, err)
	}

	first, err := st.Save(RunMetadata{}, testResult())
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.Save(RunMetadata{}, testResult())
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("run ids collide")
	}
	if err := os.WriteFile(filepath.Join(st.Dir(), "stray.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != first || runs[1].ID != second {
		t.Errorf("runs = %+v", runs)
	}

	if err := st.Remove(first); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := st.Load(first); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("load removed run: err = %v", err)
	}
}

func TestStoreErrors(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("err = %v, want ErrRunNotFound", err)
	}
	for _, id := range []string{"", "..", "../etc", "a/b"} {
		if _, err := st.Load(id); !errors.Is(err, ErrInvalidID) {
			t.Errorf("Load(%q) err = %v, want ErrInvalidID", id, err)
		}
	}

	dir := filepath.Join(st.Dir(), "broken")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "series.csv"), []byte("time,x\n0,abc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := st.LoadSeries("broken"); !errors.Is(err, ErrCorrupt) {
		t.Errorf("err = %v, want ErrCorrupt", err)
	}
}

func TestSaveNonFinite(t *testing.T) {
	st := New(t.TempDir())
	res := testResult()
	res.Series[0].Y[2] = math.Inf(1)
	id, err := st.Save(RunMetadata{}, res)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	meta, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Final != nil {
		t.Errorf("final = %v, want omitted", meta.Final)
	}
	_, series, err := st.LoadSeries(id)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(series[0].Y[2], 1) {
		t.Errorf("inf not preserved: %v", series[0].Y)
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	id, err := st.Save(RunMetadata{Tn: 1, Steps: 2}, testResult())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, id); err != nil {
		t.Fatalf("export: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.ID != id || data.Method != ode.Classic4 {
		t.Errorf("metadata = %+v", data.RunMetadata)
	}
	if len(data.Times) != 3 || len(data.Series) != 2 || data.Series[1].Label != "predator" {
		t.Errorf("unexpected export %+v", data)
	}

	c, err := st.LoadChart(id)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "Test Model (rk4)" || len(c.Series) != 2 {
		t.Errorf("chart = %+v", c)
	}
}
