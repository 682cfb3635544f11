package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Recipe turns ingredients into Yield units of Name. Station names an item
// that must be held (e.g. "Crafting Table"). Smelt recipes cost Seconds of
// world time per batch.
type Recipe struct {
	Name        string         `yaml:"name"`
	Ingredients map[string]int `yaml:"ingredients"`
	Yield       int            `yaml:"yield"` // 0 = 1
	Station     string         `yaml:"station"`
	Smelt       bool           `yaml:"smelt"`
	Seconds     int            `yaml:"seconds"`
}

// Output returns the number of units produced per batch.
func (r *Recipe) Output() int {
	if r.Yield <= 0 {
		return 1
	}
	return r.Yield
}

// IngredientNames returns ingredient names sorted for stable iteration.
func (r *Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for n := range r.Ingredients {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r *Recipe) validate() error {
	if r.Name == "" {
		return fmt.Errorf("recipe needs a name")
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %q: needs at least one ingredient", r.Name)
	}
	for item, n := range r.Ingredients {
		if n <= 0 {
			return fmt.Errorf("recipe %q: ingredient %q count must be positive, got %d", r.Name, item, n)
		}
	}
	if r.Yield < 0 || r.Seconds < 0 {
		return fmt.Errorf("recipe %q: yield and seconds must not be negative", r.Name)
	}
	if r.Smelt && r.Station == "" {
		return fmt.Errorf("recipe %q: smelting needs a station", r.Name)
	}
	return nil
}

type recipeListFile struct {
	Recipes []Recipe `yaml:"recipes"`
}

// RecipeTable holds crafting and smelting recipes by output name.
type RecipeTable struct {
	recipes map[string]*Recipe
	order   []string
}

// LoadRecipeTable loads recipes from a YAML file.
func LoadRecipeTable(path string) (*RecipeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe_list: %w", err)
	}
	var f recipeListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse recipe_list: %w", err)
	}
	return NewRecipeTable(f.Recipes)
}

// NewRecipeTable validates and indexes recipes.
func NewRecipeTable(list []Recipe) (*RecipeTable, error) {
	t := &RecipeTable{recipes: make(map[string]*Recipe, len(list))}
	for i := range list {
		r := &list[i]
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		if _, dup := t.recipes[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate recipe %q", ErrInvalidTable, r.Name)
		}
		t.recipes[r.Name] = r
		t.order = append(t.order, r.Name)
	}
	return t, nil
}

// Get returns a recipe by output name, or nil if not found.
func (t *RecipeTable) Get(name string) *Recipe {
	return t.recipes[name]
}

// Count returns the number of loaded recipes.
func (t *RecipeTable) Count() int {
	return len(t.recipes)
}

// List returns crafting (smelt=false) or smelting recipes in file order.
func (t *RecipeTable) List(smelt bool) []*Recipe {
	var out []*Recipe
	for _, name := range t.order {
		if r := t.recipes[name]; r.Smelt == smelt {
			out = append(out, r)
		}
	}
	return out
}
