package wcsp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance_Blocks(t *testing.T) {
	inst := NewInstance([]int{2, 3, 2})
	blocks := inst.Blocks()
	require.Len(t, blocks, 3)
	assert.Equal(t, []int{0}, blocks[0])    // domain 2 -> 1 bool id
	assert.Equal(t, []int{1, 2}, blocks[1]) // domain 3 -> 2 bool ids
	assert.Equal(t, []int{3}, blocks[2])    // domain 2 -> 1 bool id
	assert.Equal(t, 4, inst.NumBoolVars())
}

func TestComputeTotalWeight_SingleBinaryUnary(t *testing.T) {
	inst := NewInstance([]int{2})
	c := NewConstraint([]int{0}, inst.Blocks()[0])
	c.SetNBWeight([]int{0}, 0)
	c.SetNBWeight([]int{1}, 5)
	inst.AddConstraint(c)

	assert.Equal(t, 0.0, inst.ComputeTotalWeight(map[int]int{0: 0}))
	assert.Equal(t, 5.0, inst.ComputeTotalWeight(map[int]int{0: 1}))
}

func TestComputeTotalWeight_MissingVariableDefaultsToZero(t *testing.T) {
	inst := NewInstance([]int{2})
	c := NewConstraint([]int{0}, inst.Blocks()[0])
	c.SetNBWeight([]int{0}, 3)
	c.SetNBWeight([]int{1}, 9)
	inst.AddConstraint(c)

	assert.Equal(t, 3.0, inst.ComputeTotalWeight(map[int]int{}))
}

func TestComputeTotalWeight_Domain3UnaryScenario(t *testing.T) {
	// Domain-3 variable with unary weights w(0)=0, w(1)=3, w(2)=7.
	inst := NewInstance([]int{3})
	c := NewConstraint([]int{0}, inst.Blocks()[0])
	c.SetNBWeight([]int{0}, 0)
	c.SetNBWeight([]int{1}, 3)
	c.SetNBWeight([]int{2}, 7)
	inst.AddConstraint(c)

	assert.Equal(t, 0.0, inst.ComputeTotalWeight(map[int]int{0: 0}))
	assert.Equal(t, 3.0, inst.ComputeTotalWeight(map[int]int{0: 1}))
	assert.Equal(t, 7.0, inst.ComputeTotalWeight(map[int]int{0: 2}))
}

func TestWriteMapping_ListsEveryBlock(t *testing.T) {
	inst := NewInstance([]int{2, 3})

	var buf strings.Builder
	require.NoError(t, inst.WriteMapping(&buf))

	out := buf.String()
	assert.Contains(t, out, "--- Non-Boolean Variable Mapping BEGINS ---")
	assert.Contains(t, out, "0\t0 \n")
	assert.Contains(t, out, "1\t1 2 \n")
	assert.Contains(t, out, "--- Non-Boolean Variable Mapping ENDS ---")
}
