package main

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/odelab/internal/chart"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	t := newTable("ID", "NAME", "MODEL", "METHOD", "COUPLING", "STEPS", "H", "TIMESTAMP")
	for _, r := range runs {
		t.Row(r.ID, r.Name, r.Model, r.Method.String(), r.Coupling.String(), fmt.Sprint(r.Steps),
			fmt.Sprintf("%.4g", r.Step()), r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	fmt.Println(t.Render())
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	c, err := st.LoadChart(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s  method=%s coupling=%s\n", meta.ID, meta.Title, meta.Method, meta.Coupling)
	r := chart.ASCIIRenderer{Width: 80, Height: 15, Color: !noColor}
	if err := r.Render(os.Stdout, c); err != nil {
		return err
	}
	for _, path := range outputs {
		if err := chart.RenderFile(path, c); err != nil {
			return err
		}
		logger.Info("wrote output", "path", path)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) (err error) {
	st := storage.New(dataDir)
	var w io.Writer = os.Stdout
	if exportOut != "" {
		f, cerr := os.Create(exportOut)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if err := st.ExportJSON(w, args[0]); err != nil {
		return err
	}
	if exportOut != "" {
		logger.Info("exported run", "id", args[0], "path", exportOut)
	}
	return nil
}
