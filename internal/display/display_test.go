package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottomeasure/internal/logger"
	"github.com/hammamikhairi/ottomeasure/internal/measure"
	"github.com/hammamikhairi/ottomeasure/internal/recipe"
)

func TestRenderUnits(t *testing.T) {
	out := RenderUnits(measure.Units())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(measure.Units())+1)

	assert.Contains(t, lines[0], "UNIT")
	assert.Contains(t, out, "pinch")
	assert.Contains(t, out, "5/16")
	assert.Contains(t, out, "pinch/pinches")
	assert.Contains(t, out, "3785411/1000")
	assert.Contains(t, out, "mL^1 g^0 ea.^0")
}

func TestRenderRecipe(t *testing.T) {
	c := recipe.NewCatalog(logger.New(logger.LevelOff, nil))
	r, err := c.Get("buttermilk-pancakes")
	require.NoError(t, err)
	totals, err := r.Totals()
	require.NoError(t, err)

	out := RenderRecipe(r, totals, measure.PluralAsSource)
	assert.Contains(t, out, "Buttermilk Pancakes")
	assert.Contains(t, out, "2cup flour (473.176 mL^0 g^1 ea.^0)")
	assert.Contains(t, out, "1pinches salt")
	assert.Contains(t, out, "1dashes vanilla")
	assert.Contains(t, out, "(optional)")
	assert.Contains(t, out, "1. Whisk the flour")
	assert.Contains(t, out, "Total: 513.48")
	assert.Contains(t, out, " g, 521.872 mL")

	natural := RenderRecipe(r, totals, measure.PluralNatural)
	assert.Contains(t, natural, "2cups flour")
	assert.Contains(t, natural, "1pinch salt")
}

func TestRenderSummaries(t *testing.T) {
	out := RenderSummaries([]recipe.Summary{
		{ID: "a", Title: "Alpha", Tags: []string{"x", "y"}},
		{ID: "b", Title: "Beta"},
	})
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "[x, y]")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}
