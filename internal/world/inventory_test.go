package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAddRemove(t *testing.T) {
	inv := NewInventory()
	inv.Add("Dirt", 2)
	inv.Add("Wood", 1)
	inv.Add("Dirt", 3)
	inv.Add("Air", 0)

	assert.Equal(t, 5, inv.Count("Dirt"))
	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, []Stack{{"Dirt", 5}, {"Wood", 1}}, inv.Stacks())

	require.NoError(t, inv.Remove("Dirt", 5))
	assert.False(t, inv.Has("Dirt", 1))
	assert.Equal(t, []Stack{{"Wood", 1}}, inv.Stacks())
}

func TestInventoryRemoveTooMany(t *testing.T) {
	inv := NewInventory()
	inv.Add("Wood", 1)
	err := inv.Remove("Wood", 2)
	assert.ErrorIs(t, err, ErrInsufficientItems)
	assert.Equal(t, 1, inv.Count("Wood"), "failed removal leaves the stack")

	assert.ErrorIs(t, inv.Remove("Diamond", 1), ErrInsufficientItems)
}
