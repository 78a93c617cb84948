package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/odelab/internal/ode"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel  = "lotka_volterra"
	DefaultMethod = "rk4"
)

// ErrNoExperiments is returned by LoadFile for a file without experiments.
var ErrNoExperiments = errors.New("config: no experiments")

// Config describes one experiment. Zero Tn, Steps and Init fall back to the
// model defaults.
type Config struct {
	Name     string             `yaml:"name,omitempty"`
	Model    string             `yaml:"model"`
	Method   string             `yaml:"method"`
	Coupling string             `yaml:"coupling,omitempty"`
	Tn       float64            `yaml:"tn,omitempty"`
	Steps    int                `yaml:"steps,omitempty"`
	Init     []float64          `yaml:"init,omitempty"`
	Limit    float64            `yaml:"limit,omitempty"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	Outputs  []string           `yaml:"outputs,omitempty"`
	Store    bool               `yaml:"store,omitempty"`
}

// File is a batch of experiments.
type File struct {
	Experiments []Config `yaml:"experiments"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		Method:   DefaultMethod,
		Coupling: ode.Staggered.String(),
	}
}

// Validate checks the names and numbers that do not need the model registry.
func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.New("config: model is required")
	}
	if _, err := ode.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("config %s: %w", c.Label(), err)
	}
	if c.Coupling != "" {
		if _, err := ode.ParseCoupling(c.Coupling); err != nil {
			return fmt.Errorf("config %s: %w", c.Label(), err)
		}
	}
	if c.Tn < 0 || c.Steps < 0 || c.Limit < 0 {
		return fmt.Errorf("config %s: tn, steps and limit must not be negative", c.Label())
	}
	return nil
}

// Label names the experiment in logs: Name if set, else model/method.
func (c *Config) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Model + "/" + c.Method
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Init = append([]float64(nil), c.Init...)
	out.Outputs = append([]string(nil), c.Outputs...)
	if c.Params != nil {
		out.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	return &out
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFile reads a batch file. Experiments that leave method or coupling
// empty get the defaults.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(f.Experiments) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoExperiments)
	}
	for i := range f.Experiments {
		e := &f.Experiments[i]
		if e.Method == "" {
			e.Method = DefaultMethod
		}
		if e.Coupling == "" {
			e.Coupling = ode.Staggered.String()
		}
	}
	return &f, nil
}

// SaveFile writes a batch file.
func SaveFile(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
