package popio

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmcwm/vmcwm/internal/archive"
	"github.com/vmcwm/vmcwm/internal/model"
)

func twoVMInstance() model.Instance {
	return model.Instance{
		Jobs: []model.Job{
			{ID: "j0", VMs: []model.VirtualMachine{
				{Key: model.VMKey{JobID: "j0", Index: 0}},
				{Key: model.VMKey{JobID: "j0", Index: 1}},
			}},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inst := twoVMInstance()
	entries := []archive.Entry{
		{
			Vector: model.ObjectiveVector{Energy: big.NewRat(3, 2), Wastage: big.NewRat(0, 1), Migration: 4},
			Placement: model.Mapping{
				{JobID: "j0", Index: 0}: 1,
				{JobID: "j0", Index: 1}: 2,
			},
		},
	}

	pop := Encode(inst, entries)
	back, err := Decode(inst, pop)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.True(t, back[0].Vector.Equal(entries[0].Vector))
	assert.Equal(t, entries[0].Placement, back[0].Placement)
}

func TestDumpLoad_RoundTrip(t *testing.T) {
	inst := twoVMInstance()
	entries := []archive.Entry{
		{
			Vector:    model.ObjectiveVector{Energy: big.NewRat(1, 3), Wastage: big.NewRat(2, 5), Migration: 0},
			Placement: model.Mapping{{JobID: "j0", Index: 0}: 1, {JobID: "j0", Index: 1}: 1},
		},
	}
	pop := Encode(inst, entries)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, pop))

	loaded, err := Load(&buf)
	require.NoError(t, err)

	back, err := Decode(inst, loaded)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.True(t, back[0].Vector.Equal(entries[0].Vector))
}

func TestDecode_RejectsWrongPlacementLength(t *testing.T) {
	inst := twoVMInstance()
	pop := Population{Individuals: []Individual{
		{Vector: Vector{Energy: "0", Wastage: "0"}, Placement: []int{1}},
	}}
	_, err := Decode(inst, pop)
	assert.Error(t, err)
}
