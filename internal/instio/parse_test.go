package instio

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmcwm/vmcwm/internal/model"
)

func TestParse_Singleton(t *testing.T) {
	const text = `
# singleton scenario (spec.md §8.1)
pm 1 4 4 1 3
job j0
vm j0 0 1 1
`
	inst, err := Parse(strings.NewReader(text))
	require.NoError(t, err)

	require.Len(t, inst.PMs, 1)
	assert.Equal(t, 1, inst.PMs[0].ID)
	assert.Equal(t, int64(4), inst.PMs[0].CPU)
	assert.Equal(t, int64(4), inst.PMs[0].Mem)
	assert.Equal(t, 0, inst.PMs[0].Idle.Cmp(big.NewRat(1, 1)))
	assert.Equal(t, 0, inst.PMs[0].Full.Cmp(big.NewRat(3, 1)))

	require.Len(t, inst.Jobs, 1)
	assert.Equal(t, "j0", inst.Jobs[0].ID)
	require.Len(t, inst.Jobs[0].VMs, 1)
	vm := inst.Jobs[0].VMs[0]
	assert.Equal(t, model.VMKey{JobID: "j0", Index: 0}, vm.Key)
	assert.Equal(t, int64(1), vm.CPU)
	assert.Equal(t, int64(1), vm.Mem)
	assert.Nil(t, inst.MigrationPercentile)
}

func TestParse_FlagsAndCurrentAndMigration(t *testing.T) {
	const text = `
pm 1 2 2 1 2
pm 2 2 2 1 2
job j0
vm j0 0 2 2 allow=2 anticolocate
current j0 0 1
migration 1/2
`
	inst, err := Parse(strings.NewReader(text))
	require.NoError(t, err)

	vm := inst.Jobs[0].VMs[0]
	assert.True(t, vm.AntiColocate)
	assert.True(t, vm.IsAllowed(2))
	assert.False(t, vm.IsAllowed(1))

	pmID, ok := inst.Current.Get(model.VMKey{JobID: "j0", Index: 0})
	require.True(t, ok)
	assert.Equal(t, 1, pmID)

	require.NotNil(t, inst.MigrationPercentile)
	assert.Equal(t, 0, inst.MigrationPercentile.Cmp(big.NewRat(1, 2)))
}

func TestParse_VMBeforeJobIsError(t *testing.T) {
	const text = `
pm 1 1 1 1 1
vm j0 0 1 1
`
	_, err := Parse(strings.NewReader(text))
	assert.Error(t, err)
}

func TestParse_DuplicateJobIsError(t *testing.T) {
	const text = `
job j0
job j0
`
	_, err := Parse(strings.NewReader(text))
	assert.Error(t, err)
}

func TestParse_UnrecognizedDirectiveIsError(t *testing.T) {
	_, err := Parse(strings.NewReader("bogus 1 2 3\n"))
	assert.Error(t, err)
}
