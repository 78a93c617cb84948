package main

import (
	"fmt"
	"strings"

	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
	"github.com/spf13/cobra"
)

func listModels(cmd *cobra.Command, args []string) error {
	t := newTable("MODEL", "TITLE", "STATES", "EXACT", "PARAMETERS")
	for _, name := range models.Names() {
		m, err := models.New(name)
		if err != nil {
			return err
		}
		_, exact := m.(models.Analytic)
		p := m.Params()
		kv := make([]string, 0, len(p))
		for _, k := range p.Names() {
			kv = append(kv, fmt.Sprintf("%s=%g", k, p[k]))
		}
		t.Row(name, m.Title(), strings.Join(m.Labels(), ", "), yesNo(exact), strings.Join(kv, " "))
	}
	fmt.Println(t.Render())
	return nil
}

func listMethods(cmd *cobra.Command, args []string) error {
	t := newTable("METHOD", "ORDER", "STAGES")
	for _, m := range ode.Methods() {
		t.Row(m.String(), fmt.Sprint(m.Order()), fmt.Sprint(m.Stages()))
	}
	fmt.Println(t.Render())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets(args[0])
	if len(names) == 0 {
		return fmt.Errorf("no presets for model %q", args[0])
	}
	t := newTable("PRESET", "METHOD", "TN", "STEPS", "INIT")
	for _, name := range names {
		p := config.GetPreset(args[0], name)
		t.Row(name, p.Method, fmt.Sprintf("%g", p.Tn), fmt.Sprint(p.Steps), formatValues(p.Init))
	}
	fmt.Println(t.Render())
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
