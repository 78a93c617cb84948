package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownModel is returned by New for a name that is not registered.
var ErrUnknownModel = errors.New("models: unknown model")

var constructors = map[string]func() Model{
	"bacteria_growth":          NewBacteriaGrowth,
	"gompertz":                 NewGompertz,
	"demographic":              NewDemographic,
	"seasonal_capacity":        NewSeasonalCapacity,
	"constant_rate_harvesting": NewConstantRateHarvesting,
	"optimal_harvesting":       NewOptimalHarvesting,
	"generalist_vs_specialist": NewGeneralistVsSpecialist,
	"lotka_volterra":           NewLotkaVolterra,
	"logistic_predator_prey":   NewLogisticPredatorPrey,
	"competition":              NewCompetition,
	"another_competition":      NewAnotherCompetition,
	"mutualism1":               NewMutualism1,
	"mutualism2":               NewMutualism2,
	"pest_control1":            NewPestControl1,
	"pest_control2":            NewPestControl2,
	"rabies_pest1":             NewRabiesPest1,
	"rabies_pest2":             NewRabiesPest2,
	"rabies_pest3":             NewRabiesPest3,
	"seir1":                    NewSEIR1,
	"seir2":                    NewSEIR2,
}

// New returns a fresh instance of the named model with default parameters.
func New(name string) (Model, error) {
	fn, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, name)
	}
	return fn(), nil
}

// Names lists the registered models in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
