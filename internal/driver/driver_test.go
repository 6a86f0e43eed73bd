package driver

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmcwm/vmcwm/internal/encoder"
	"github.com/vmcwm/vmcwm/internal/mcs"
	"github.com/vmcwm/vmcwm/internal/model"
	"github.com/vmcwm/vmcwm/internal/rng"
	"github.com/vmcwm/vmcwm/internal/stratify"
	"github.com/vmcwm/vmcwm/internal/vmerr"
)

func twoPMInstance() model.Instance {
	return model.Instance{
		PMs: []model.PhysicalMachine{
			{ID: 1, CPU: 4, Mem: 4, Idle: big.NewRat(1, 1), Full: big.NewRat(3, 1)},
			{ID: 2, CPU: 4, Mem: 4, Idle: big.NewRat(1, 1), Full: big.NewRat(3, 1)},
		},
		Jobs: []model.Job{
			{ID: "j0", VMs: []model.VirtualMachine{
				{Key: model.VMKey{JobID: "j0", Index: 0}, CPU: 1, Mem: 1},
				{Key: model.VMKey{JobID: "j0", Index: 1}, CPU: 1, Mem: 1},
			}},
		},
		MigrationPercentile: big.NewRat(0, 1),
	}
}

func TestNew_RejectsLBXWithHash(t *testing.T) {
	inst := twoPMInstance()
	s, vi, err := encoder.Encode(inst, encoder.Options{})
	require.NoError(t, err)
	mgr := encoder.BuildObjectives(inst, vi, encoder.Options{})

	_, err = New(s, vi, inst, mgr, Config{MCSVariant: mcs.LBX, AugmentWithHash: true}, nil)
	assert.ErrorIs(t, err, vmerr.ErrUnsupportedCombination)
}

func TestRunParetoMCS_ArchivesFeasiblePlacement(t *testing.T) {
	inst := twoPMInstance()
	s, vi, err := encoder.Encode(inst, encoder.Options{})
	require.NoError(t, err)
	mgr := encoder.BuildObjectives(inst, vi, encoder.Options{})

	d, err := New(s, vi, inst, mgr, Config{
		MCSVariant:   mcs.CLD,
		StratifyMode: stratify.Mode{Ratio: 2},
		Seed:         rng.NewSeed(1),
	}, nil)
	require.NoError(t, err)

	arc, err := d.Run()
	require.NoError(t, err)
	assert.Greater(t, arc.Len(), 0)

	for _, e := range arc.Iter() {
		require.NoError(t, model.ValidatePlacement(inst, e.Placement))
	}
}

func TestRunGIA_ArchivesLocalOptimum(t *testing.T) {
	inst := twoPMInstance()
	s, vi, err := encoder.Encode(inst, encoder.Options{})
	require.NoError(t, err)
	mgr := encoder.BuildObjectives(inst, vi, encoder.Options{})

	d, err := New(s, vi, inst, mgr, Config{
		Mode: ModeGIA,
		Seed: rng.NewSeed(2),
	}, nil)
	require.NoError(t, err)

	arc, err := d.Run()
	require.NoError(t, err)
	assert.Greater(t, arc.Len(), 0)
	for _, e := range arc.Iter() {
		require.NoError(t, model.ValidatePlacement(inst, e.Placement))
	}
}

func TestRunHash_ArchivesSamples(t *testing.T) {
	inst := twoPMInstance()
	s, vi, err := encoder.Encode(inst, encoder.Options{})
	require.NoError(t, err)
	mgr := encoder.BuildObjectives(inst, vi, encoder.Options{})

	d, err := New(s, vi, inst, mgr, Config{
		Mode:           ModeHash,
		Seed:           rng.NewSeed(3),
		HashRounds:     5,
		EncoderOptions: encoder.Options{},
	}, nil)
	require.NoError(t, err)

	arc, err := d.Run()
	require.NoError(t, err)
	for _, e := range arc.Iter() {
		require.NoError(t, model.ValidatePlacement(inst, e.Placement))
	}
}
