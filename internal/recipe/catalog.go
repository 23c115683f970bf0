package recipe

import (
	"errors"
	"sort"
	"strings"

	"github.com/hammamikhairi/ottomeasure/internal/logger"
	"github.com/hammamikhairi/ottomeasure/internal/measure"
)

// ErrNotFound is returned when a recipe ID is not in the catalog.
var ErrNotFound = errors.New("recipe not found")

// Summary is a lightweight view of a recipe for listing.
type Summary struct {
	ID    string
	Title string
	Tags  []string
}

// Catalog holds sample recipes in memory. It is never mutated after
// construction, so it is safe for concurrent reads.
type Catalog struct {
	recipes map[string]*Recipe
	log     *logger.Logger
}

// NewCatalog creates a catalog preloaded with built-in recipes.
func NewCatalog(log *logger.Logger) *Catalog {
	c := &Catalog{
		recipes: make(map[string]*Recipe),
		log:     log,
	}
	c.seed()
	return c
}

// List returns summaries of all recipes, sorted by title.
func (c *Catalog) List() []Summary {
	c.log.Debug("listing all recipes, count=%d", len(c.recipes))

	out := make([]Summary, 0, len(c.recipes))
	for _, r := range c.recipes {
		out = append(out, summarize(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Get returns a copy of the recipe with the given ID.
func (c *Catalog) Get(id string) (*Recipe, error) {
	r, ok := c.recipes[id]
	if !ok {
		c.log.Debug("recipe not found: %s", id)
		return nil, ErrNotFound
	}
	return r.clone(), nil
}

// Search returns recipes whose title, story, tags or ingredient names
// contain the query, ignoring case.
func (c *Catalog) Search(query string) []Summary {
	q := strings.ToLower(query)
	c.log.Debug("searching recipes for: %s", q)

	var out []Summary
	for _, r := range c.recipes {
		if matches(r, q) {
			out = append(out, summarize(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func summarize(r *Recipe) Summary {
	return Summary{ID: r.ID, Title: r.Title, Tags: r.Tags}
}

func matches(r *Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Story), query) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), query) {
			return true
		}
	}
	return false
}

// seed populates the catalog with built-in recipes.
func (c *Catalog) seed() {
	recipes := []*Recipe{
		sweetTea(),
		buttermilkPancakes(),
	}
	for _, r := range recipes {
		c.recipes[r.ID] = r
	}
	c.log.Debug("seeded %d recipes", len(recipes))
}

func sweetTea() *Recipe {
	return &Recipe{
		ID:         "honey-sweet-tea",
		Title:      "Honey Sweet Tea",
		Story:      "Sugar for the body, honey for the soul. Brewed strong and poured over ice.",
		CoverPhoto: Photo{URI: "photos/honey-sweet-tea.jpg", Caption: "A tall glass of tea"},
		Tags:       []string{"drink", "summer", "quick"},
		Ingredients: []Ingredient{
			{Name: "sugar", Amount: measure.MustNew(2, measure.DryTeaspoon)},
			{Name: "honey", Amount: measure.MustNew(6, measure.WetTeaspoon)},
			{Name: "water", Amount: measure.MustNew(1, measure.WetQuart)},
			{Name: "black tea", Amount: measure.MustNew(8, measure.DryGram)},
			{Name: "lemon juice", Amount: measure.MustNew(2, measure.WetDash), Optional: true},
		},
		Steps: []Step{
			{Position: 0, Content: "Bring the water to a boil and take it off the heat."},
			{Position: 1, Content: "Steep the tea for five minutes, then strain."},
			{Position: 2, Content: "Stir in the sugar and honey while the tea is still hot.", Images: []Photo{
				{URI: "photos/honey-sweet-tea-stir.jpg", Caption: "Stirring in the honey"},
			}},
			{Position: 3, Content: "Cool, add lemon if you like, and pour over ice."},
		},
	}
}

func buttermilkPancakes() *Recipe {
	return &Recipe{
		ID:         "buttermilk-pancakes",
		Title:      "Buttermilk Pancakes",
		Story:      "Weekend pancakes. Do not overmix; lumps are fine.",
		CoverPhoto: Photo{URI: "photos/buttermilk-pancakes.jpg", Caption: "A short stack"},
		Tags:       []string{"breakfast", "vegetarian"},
		Ingredients: []Ingredient{
			{Name: "flour", Amount: measure.MustNew(2, measure.DryCup)},
			{Name: "sugar", Amount: measure.MustNew(2, measure.DryTablespoon)},
			{Name: "baking powder", Amount: measure.MustNew(2, measure.DryTeaspoon)},
			{Name: "salt", Amount: measure.MustNew(1, measure.DryPinch)},
			{Name: "buttermilk", Amount: measure.MustNew(2, measure.WetCup)},
			{Name: "melted butter", Amount: measure.MustNew(3, measure.WetTablespoon)},
			{Name: "vanilla", Amount: measure.MustNew(1, measure.WetDash), Optional: true},
			{Name: "eggs"},
		},
		Steps: []Step{
			{Position: 0, Content: "Whisk the flour, sugar, baking powder and salt together."},
			{Position: 1, Content: "Whisk the buttermilk, eggs, butter and vanilla in a second bowl."},
			{Position: 2, Content: "Fold wet into dry until just combined."},
			{Position: 3, Content: "Cook on a hot griddle until bubbles form, flip once.", Images: []Photo{
				{URI: "photos/buttermilk-pancakes-flip.jpg", Caption: "Ready to flip"},
			}},
		},
	}
}
