package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vmcwm/vmcwm/internal/driver"
	"github.com/vmcwm/vmcwm/internal/mcs"
)

func TestParseAlgorithm_KnownValues(t *testing.T) {
	mode, variant, err := parseAlgorithm("PCLD")
	assert.NoError(t, err)
	assert.Equal(t, driver.ModeParetoMCS, mode)
	assert.Equal(t, mcs.CLD, variant)

	mode, variant, err = parseAlgorithm("PLBX")
	assert.NoError(t, err)
	assert.Equal(t, driver.ModeParetoMCS, mode)
	assert.Equal(t, mcs.LBX, variant)

	mode, _, err = parseAlgorithm("GIA")
	assert.NoError(t, err)
	assert.Equal(t, driver.ModeGIA, mode)

	mode, _, err = parseAlgorithm("HE")
	assert.NoError(t, err)
	assert.Equal(t, driver.ModeHash, mode)
}

func TestParseAlgorithm_RejectsOutOfScope(t *testing.T) {
	_, _, err := parseAlgorithm("PBO")
	assert.Error(t, err)

	_, _, err = parseAlgorithm("LS")
	assert.Error(t, err)

	_, _, err = parseAlgorithm("bogus")
	assert.Error(t, err)
}

func TestParseStratifyMode_Off(t *testing.T) {
	mode := parseStratifyMode("off", 0.5, 0)
	assert.True(t, mode.Fixed)
	assert.Equal(t, 1, mode.N)
}

func TestParseStratifyMode_FixedPartitionNumber(t *testing.T) {
	mode := parseStratifyMode("merged", 0.5, 4)
	assert.True(t, mode.Fixed)
	assert.Equal(t, 4, mode.N)
}

func TestParseStratifyMode_RatioDefault(t *testing.T) {
	mode := parseStratifyMode("merged", 0.75, 0)
	assert.False(t, mode.Fixed)
	assert.Equal(t, 0.75, mode.Ratio)
}
