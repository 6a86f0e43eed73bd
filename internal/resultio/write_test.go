package resultio

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/model"
)

func TestWriteResults_Singleton(t *testing.T) {
	entries := []archive.Entry{
		{
			Vector: model.ObjectiveVector{
				Energy:    big.NewRat(3, 2),
				Wastage:   new(big.Rat),
				Migration: 0,
			},
			Placement: model.Mapping{
				{JobID: "j0", Index: 0}: 1,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, entries, true))

	assert.Equal(t, "e 1.50000 w 0.00000 m 0\np j0-0 -> 1\n", buf.String())
}

func TestWriteResults_WithoutPlacements(t *testing.T) {
	entries := []archive.Entry{
		{Vector: model.ObjectiveVector{Energy: big.NewRat(1, 3), Wastage: big.NewRat(1, 1), Migration: 5}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, entries, false))
	assert.Equal(t, "e 0.33333 w 1.00000 m 5\n", buf.String())
}

func TestWriteStatus(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStatus(&buf, true))
	assert.Equal(t, "s SUCCESS\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteStatus(&buf, false))
	assert.Equal(t, "s FAILURE\n", buf.String())
}
