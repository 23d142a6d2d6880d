package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_Zero(t *testing.T) {
	assert.Equal(t, 0.0, Estimate(0, 0, DefaultInputRatePerMillion, DefaultOutputRatePerMillion))
}

func TestEstimate_InputOnly(t *testing.T) {
	assert.Equal(t, 0.25, Estimate(1_000_000, 0, 0.25, 2))
}

func TestEstimate_OutputOnly(t *testing.T) {
	assert.Equal(t, 2.0, Estimate(0, 1_000_000, 0.25, 2))
}

func TestEstimate_Mixed(t *testing.T) {
	// 1000 prompt + 200 completion at default rates.
	assert.Equal(t, 0.00065, Estimate(1000, 200, 0.25, 2))
}

func TestEstimate_RoundsToSixDecimals(t *testing.T) {
	// 1 prompt token at $0.25/1M is 0.00000025, which rounds to zero.
	assert.Equal(t, 0.0, Estimate(1, 0, 0.25, 2))
	// 3 completion tokens at $2/1M is 0.000006 exactly.
	assert.Equal(t, 0.000006, Estimate(0, 3, 0.25, 2))
}

func TestEstimate_Deterministic(t *testing.T) {
	a := Estimate(1234, 567, 0.25, 2)
	b := Estimate(1234, 567, 0.25, 2)
	assert.Equal(t, a, b)
}
