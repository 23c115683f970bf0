package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottomeasure/internal/logger"
	"github.com/hammamikhairi/ottomeasure/internal/measure"
)

func newCatalog() *Catalog {
	return NewCatalog(logger.New(logger.LevelOff, nil))
}

func TestCatalogList(t *testing.T) {
	list := newCatalog().List()
	require.Len(t, list, 2)
	assert.Equal(t, "Buttermilk Pancakes", list[0].Title)
	assert.Equal(t, "Honey Sweet Tea", list[1].Title)
}

func TestCatalogGet(t *testing.T) {
	c := newCatalog()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"honey-sweet-tea", nil},
		{"buttermilk-pancakes", nil},
		{"nonexistent", ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := c.Get(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, r.ID)
			assert.NotEmpty(t, r.Steps)
			assert.NotEmpty(t, r.Ingredients)
			for i, s := range r.Steps {
				assert.Equal(t, uint8(i), s.Position)
			}
		})
	}
}

func TestCatalogGetReturnsCopy(t *testing.T) {
	c := newCatalog()

	r, err := c.Get("honey-sweet-tea")
	require.NoError(t, err)
	r.Title = "changed"
	r.Ingredients[0].Name = "salt"

	again, err := c.Get("honey-sweet-tea")
	require.NoError(t, err)
	assert.Equal(t, "Honey Sweet Tea", again.Title)
	assert.Equal(t, "sugar", again.Ingredients[0].Name)
}

func TestCatalogSearch(t *testing.T) {
	c := newCatalog()

	tests := []struct {
		query string
		count int
	}{
		{"honey", 1},
		{"BREAKFAST", 1},
		{"sugar", 2},
		{"nonexistent-query-xyz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Len(t, c.Search(tt.query), tt.count)
		})
	}
}

func TestTotals(t *testing.T) {
	c := newCatalog()

	tests := []struct {
		id          string
		grams       float64
		millilitres float64
	}{
		{"honey-sweet-tea", 18, 983.717},
		{"buttermilk-pancakes", 513.4885, 521.872},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := c.Get(tt.id)
			require.NoError(t, err)
			totals, err := r.Totals()
			require.NoError(t, err)
			assert.InDelta(t, tt.grams, totals.Grams, 1e-9)
			assert.InDelta(t, tt.millilitres, totals.Millilitres, 1e-9)
		})
	}
}

func TestTotalsEmpty(t *testing.T) {
	r := &Recipe{Ingredients: []Ingredient{{Name: "eggs"}}}
	totals, err := r.Totals()
	require.NoError(t, err)
	assert.Zero(t, totals)
}

func TestScale(t *testing.T) {
	r, err := newCatalog().Get("honey-sweet-tea")
	require.NoError(t, err)

	doubled, err := r.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, doubled.Ingredients[0].Amount.Raw())
	assert.Equal(t, measure.DryTeaspoon, doubled.Ingredients[0].Amount.Unit())
	assert.Equal(t, 2.0, r.Ingredients[0].Amount.Raw(), "original must be untouched")

	before, err := r.Totals()
	require.NoError(t, err)
	after, err := doubled.Totals()
	require.NoError(t, err)
	assert.InDelta(t, 2*before.Millilitres, after.Millilitres, 1e-9)
}

func TestScaleSkipsUnmeasured(t *testing.T) {
	r, err := newCatalog().Get("buttermilk-pancakes")
	require.NoError(t, err)

	half, err := r.Scale(0.5)
	require.NoError(t, err)
	last := half.Ingredients[len(half.Ingredients)-1]
	assert.Equal(t, "eggs", last.Name)
	assert.True(t, last.Amount.IsZero())
}
