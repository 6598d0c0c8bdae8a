package databank

import (
	"maps"

	"github.com/roach88/chemref/internal/estimate"
	"github.com/roach88/chemref/internal/resolve"
)

// Estimator input keys.
const (
	// InputHc is the heat of combustion in J/mol, as float64.
	InputHc = "Hc"
	// InputAtoms is the molecular formula as map[string]int.
	InputAtoms = "atoms"
)

// builtinEstimators maps catalog estimator ids to their implementations.
// Names are filled in from the catalog.
var builtinEstimators = map[string]resolve.Estimator{
	"suzuki_lfl": {
		Requires: []string{InputHc},
		Estimate: fromHc(estimate.SuzukiLFL),
	},
	"suzuki_ufl": {
		Requires: []string{InputHc},
		Estimate: fromHc(estimate.SuzukiUFL),
	},
	"crowl_louvar_lfl": {
		Requires: []string{InputAtoms},
		Estimate: fromAtoms(estimate.CrowlLouvarLFL),
	},
	"crowl_louvar_ufl": {
		Requires: []string{InputAtoms},
		Estimate: fromAtoms(estimate.CrowlLouvarUFL),
	},
}

// BuiltinEstimators returns a copy of the estimator ids known to every
// Databank.
func BuiltinEstimators() map[string]resolve.Estimator {
	return maps.Clone(builtinEstimators)
}

func fromHc(f func(float64) (float64, bool)) resolve.EstimateFunc {
	return func(in resolve.Inputs) (float64, bool) {
		hc, ok := in[InputHc].(float64)
		if !ok {
			return 0, false
		}
		return f(hc)
	}
}

func fromAtoms(f func(map[string]int) (float64, bool)) resolve.EstimateFunc {
	return func(in resolve.Inputs) (float64, bool) {
		atoms, ok := in[InputAtoms].(map[string]int)
		if !ok {
			return 0, false
		}
		return f(atoms)
	}
}
