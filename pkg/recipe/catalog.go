package recipe

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tastehub/tastehub-go/pkg/version"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// catalogFile is the on-disk layout of a catalog.
type catalogFile struct {
	Version string   `yaml:"version"`
	Recipes []Recipe `yaml:"recipes"`
}

// Catalog is an immutable, ordered set of recipes.
type Catalog struct {
	recipes []Recipe
	byID    map[string]int
}

// Query selects recipes. Empty fields match everything.
type Query struct {
	// Search matches a case-insensitive substring of the name, region,
	// description or any ingredient.
	Search string

	// Region matches the region exactly.
	Region string

	// Difficulty matches the rating exactly.
	Difficulty Difficulty
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	c, err := Parse(builtinCatalog)
	if err != nil {
		panic(fmt.Sprintf("builtin recipe catalog is invalid: %v", err))
	}
	return c
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := version.CheckCatalog(f.Version); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.Recipes)
}

// New builds a catalog from recipes, validating each and rejecting
// duplicate IDs.
func New(recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]Recipe, 0, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}
	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidRecipe, r.ID)
		}
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r)
	}
	return c, nil
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// All returns every recipe in catalog order.
func (c *Catalog) All() []Recipe {
	out := make([]Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Get returns the recipe with the given ID.
func (c *Catalog) Get(id string) (Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	return c.recipes[i], nil
}

// Filter returns the recipes matching every non-empty field of q,
// in catalog order.
func (c *Catalog) Filter(q Query) []Recipe {
	search := strings.ToLower(q.Search)

	var out []Recipe
	for _, r := range c.recipes {
		if search != "" && !r.matches(search) {
			continue
		}
		if q.Region != "" && r.Region != q.Region {
			continue
		}
		if q.Difficulty != "" && r.Difficulty != q.Difficulty {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matches reports whether the lowercase term occurs in the name, region,
// description or an ingredient.
func (r Recipe) matches(term string) bool {
	for _, field := range []string{r.Name, r.Region, r.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), term) {
			return true
		}
	}
	return false
}

// Regions returns the distinct regions in order of first appearance.
func (c *Catalog) Regions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, r := range c.recipes {
		if !seen[r.Region] {
			seen[r.Region] = true
			regions = append(regions, r.Region)
		}
	}
	return regions
}

// Featured returns up to n distinct recipes picked at random using rng.
// A nil rng uses the package-level source.
func (c *Catalog) Featured(n int, rng *rand.Rand) []Recipe {
	if n <= 0 {
		return nil
	}

	perm := make([]int, len(c.recipes))
	for i := range perm {
		perm[i] = i
	}
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	n = min(n, len(perm))
	out := make([]Recipe, 0, n)
	for _, i := range perm[:n] {
		out = append(out, c.recipes[i])
	}
	return out
}
