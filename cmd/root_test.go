package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveCmd_DefaultAlgorithm_IsPCLD(t *testing.T) {
	flag := solveCmd.Flags().Lookup("algorithm")
	assert.NotNil(t, flag, "algorithm flag must be registered")
	assert.Equal(t, "PCLD", flag.DefValue)
}

func TestSolveCmd_InstanceFlag_DefaultsEmpty(t *testing.T) {
	flag := solveCmd.Flags().Lookup("instance")
	assert.NotNil(t, flag, "instance flag must be registered")
	assert.Equal(t, "", flag.DefValue)
}

func TestSolveCmd_StratifyFlag_DefaultsMerged(t *testing.T) {
	flag := solveCmd.Flags().Lookup("stratify")
	assert.NotNil(t, flag, "stratify flag must be registered")
	assert.Equal(t, "merged", flag.DefValue)
}
