package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/odelab/internal/models"
	"github.com/san-kum/odelab/internal/ode"
)

type Registry struct {
	models  map[string]func() models.Model
	methods map[string]ode.Method
}

// NewRegistry returns a registry holding every built-in model and method.
func NewRegistry() *Registry {
	r := &Registry{
		models:  make(map[string]func() models.Model),
		methods: make(map[string]ode.Method),
	}
	for _, name := range models.Names() {
		r.models[name] = func() models.Model {
			m, _ := models.New(name)
			return m
		}
	}
	for _, m := range ode.Methods() {
		r.methods[m.String()] = m
	}
	return r
}

// RegisterModel adds or replaces a model factory.
func (r *Registry) RegisterModel(name string, fn func() models.Model) {
	r.models[name] = fn
}

func (r *Registry) GetModel(name string) (models.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return fn(), nil
}

// GetMethod resolves a method by name or alias.
func (r *Registry) GetMethod(name string) (ode.Method, error) {
	if m, ok := r.methods[name]; ok {
		return m, nil
	}
	return ode.ParseMethod(name)
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListMethods returns the method names in order of increasing accuracy.
func (r *Registry) ListMethods() []string {
	ms := make([]ode.Method, 0, len(r.methods))
	for _, m := range r.methods {
		ms = append(ms, m)
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i] < ms[j] })
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return names
}
