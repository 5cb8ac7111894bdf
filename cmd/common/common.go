// Package common holds helpers shared by all midicat commands.
package common

import "github.com/GiGurra/boa/pkg/boa"

// DefaultParamEnricher is the boa param derivation used by every command:
// flag names and short flags derived from the Params struct fields.
func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}
