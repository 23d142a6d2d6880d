// Package pricing converts token usage into a monetary estimate. Rates are
// injected so a pricing change never touches call sites.
package pricing

import "math"

// Default per-million-token rates for gpt-5-mini.
const (
	DefaultInputRatePerMillion  = 0.25
	DefaultOutputRatePerMillion = 2.0
)

// Estimate returns the USD cost of a call, rounded to six decimal places:
// promptTokens*inputRate/1e6 + completionTokens*outputRate/1e6.
func Estimate(promptTokens, completionTokens int, inputRatePerMillion, outputRatePerMillion float64) float64 {
	inputCost := float64(promptTokens) * inputRatePerMillion / 1e6
	outputCost := float64(completionTokens) * outputRatePerMillion / 1e6
	return math.Round((inputCost+outputCost)*1e6) / 1e6
}
