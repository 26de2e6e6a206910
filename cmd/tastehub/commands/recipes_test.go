package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastehub/tastehub-go/pkg/recipe"
)

func TestRunList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(recipe.Builtin(), recipe.Query{Region: "Kerala"}, &buf))
	output := buf.String()

	assert.Contains(t, output, "malabar")
	assert.Contains(t, output, "thalassery")
	assert.NotContains(t, output, "hyderabadi-dum")
	assert.Contains(t, output, "01:05:00")
	assert.Contains(t, output, "2 of 6 recipes")
}

func TestRunListNoMatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunList(recipe.Builtin(), recipe.Query{Search: "pizza"}, &buf))
	assert.Equal(t, "No recipes match.\n", buf.String())
}

func TestRunShow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunShow(recipe.Builtin(), "hyderabadi-dum", &buf))
	output := buf.String()

	assert.Contains(t, output, "Hyderabadi Dum Biriyani")
	assert.Contains(t, output, "Prep:       01:00:00")
	assert.Contains(t, output, "Cook:       45:00")
	assert.Contains(t, output, "https://www.youtube.com/embed/6Gxg1yDf3KQ")
	assert.Contains(t, output, "  1. Marinate the meat")
	assert.Contains(t, output, "Tips:")
}

func TestRunShowUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := RunShow(recipe.Builtin(), "pizza", &buf)
	assert.ErrorIs(t, err, recipe.ErrRecipeNotFound)
}
