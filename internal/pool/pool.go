// Package pool holds the read-only mapping from interest category to its pool
// of candidate tasks. A Catalog is handed to the deck at draw time; nothing in
// this package is global mutable state.
package pool

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownCategory is returned by Catalog.Require for keys that are not in the catalog.
var ErrUnknownCategory = errors.New("unknown category")

// Category is one interest with its candidate tasks.
// A Random category has no tasks of its own; it draws from every other category.
type Category struct {
	Key    string   `yaml:"key" json:"key"`
	Title  string   `yaml:"title" json:"title"`
	Tasks  []string `yaml:"tasks,omitempty" json:"tasks,omitempty"`
	Random bool     `yaml:"random,omitempty" json:"random,omitempty"`
}

// Catalog is an ordered, read-only set of categories.
type Catalog struct {
	categories []Category
	byKey      map[string]int
}

// NewCatalog validates categories and returns a catalog preserving their order.
// Keys must be non-empty and unique.
func NewCatalog(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byKey:      make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		if cat.Key == "" {
			return nil, fmt.Errorf("category %d: empty key", i)
		}
		if _, dup := c.byKey[cat.Key]; dup {
			return nil, fmt.Errorf("category %q: duplicate key", cat.Key)
		}
		if cat.Title == "" {
			cat.Title = cat.Key
		}
		cat.Tasks = slices.Clone(cat.Tasks)
		c.byKey[cat.Key] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		cat.Tasks = slices.Clone(cat.Tasks)
		out[i] = cat
	}
	return out
}

// Lookup returns the category for key.
func (c *Catalog) Lookup(key string) (Category, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Category{}, false
	}
	cat := c.categories[i]
	cat.Tasks = slices.Clone(cat.Tasks)
	return cat, true
}

// Require is Lookup that fails with ErrUnknownCategory.
func (c *Catalog) Require(key string) (Category, error) {
	cat, ok := c.Lookup(key)
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	return cat, nil
}

// Tasks returns a copy of the pool for key. Unknown keys yield an empty pool.
// Random categories yield the union of all non-random pools, first occurrence wins.
func (c *Catalog) Tasks(key string) []string {
	i, ok := c.byKey[key]
	if !ok {
		return nil
	}
	cat := c.categories[i]
	if !cat.Random {
		return slices.Clone(cat.Tasks)
	}

	seen := make(map[string]bool)
	var out []string
	for _, other := range c.categories {
		if other.Random {
			continue
		}
		for _, t := range other.Tasks {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// Size returns the number of tasks key would draw from.
func (c *Catalog) Size(key string) int {
	return len(c.Tasks(key))
}
