package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Food holds the nutrition of an edible item.
type Food struct {
	Name       string `yaml:"name"`
	Hunger     int    `yaml:"hunger"`
	Saturation int    `yaml:"saturation"`
}

type foodListFile struct {
	Foods []Food `yaml:"foods"`
}

// FoodTable holds nutrition values indexed by item name.
type FoodTable struct {
	foods map[string]*Food
}

// LoadFoodTable loads nutrition values from a YAML file.
func LoadFoodTable(path string) (*FoodTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read food_list: %w", err)
	}
	var f foodListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse food_list: %w", err)
	}
	return NewFoodTable(f.Foods)
}

// NewFoodTable validates and indexes foods.
func NewFoodTable(list []Food) (*FoodTable, error) {
	t := &FoodTable{foods: make(map[string]*Food, len(list))}
	for i := range list {
		food := &list[i]
		switch {
		case food.Name == "":
			return nil, fmt.Errorf("%w: food needs a name", ErrInvalidTable)
		case food.Hunger <= 0:
			return nil, fmt.Errorf("%w: food %q: hunger must be positive, got %d", ErrInvalidTable, food.Name, food.Hunger)
		case food.Saturation < 0:
			return nil, fmt.Errorf("%w: food %q: saturation must not be negative", ErrInvalidTable, food.Name)
		}
		if _, dup := t.foods[food.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate food %q", ErrInvalidTable, food.Name)
		}
		t.foods[food.Name] = food
	}
	return t, nil
}

// Get returns a food by item name, or nil if the item is not edible.
func (t *FoodTable) Get(name string) *Food {
	return t.foods[name]
}

// Count returns the number of loaded foods.
func (t *FoodTable) Count() int {
	return len(t.foods)
}
