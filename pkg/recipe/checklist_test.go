package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistToggle(t *testing.T) {
	c := NewChecklist(Recipe{Ingredients: []string{"rice", "saffron", "ghee"}})

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Remaining())

	on, err := c.Toggle(1)
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, c.Checked(1))
	assert.Equal(t, 2, c.Remaining())

	off, err := c.Toggle(1)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, 3, c.Remaining())

	item, err := c.Item(2)
	require.NoError(t, err)
	assert.Equal(t, "ghee", item)
}

func TestChecklistOutOfRange(t *testing.T) {
	c := NewChecklist(Recipe{Ingredients: []string{"rice"}})

	_, err := c.Toggle(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.Toggle(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.Item(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	assert.False(t, c.Checked(7))
}

func TestChecklistCopiesIngredients(t *testing.T) {
	r := Recipe{Ingredients: []string{"rice"}}
	c := NewChecklist(r)
	r.Ingredients[0] = "changed"

	item, err := c.Item(0)
	require.NoError(t, err)
	assert.Equal(t, "rice", item)
}
