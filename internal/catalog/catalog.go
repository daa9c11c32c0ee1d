// Package catalog holds the documented environment variable names, grouped
// by category. The catalogue is data only: it never changes how a variable
// is classified at runtime.
package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/unrss/shenv/internal/value"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Order is the fixed order in which categories are composed.
var Order = []string{
	"action",
	"config",
	"dynamic",
	"git",
	"global",
	"jetbrains",
	"python",
	"secrets",
	"system",
	"unix",
}

// Var declares one documented variable.
type Var struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc,omitempty"`
	// Kind is the kind the variable is documented to hold. It is advisory.
	Kind value.Kind `yaml:"kind,omitempty"`
}

// Category is a named group of variable declarations.
type Category struct {
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Source string `yaml:"source,omitempty"`
	Vars   []Var  `yaml:"vars"`
}

// Has reports whether the category declares name.
func (c Category) Has(name string) bool {
	for _, v := range c.Vars {
		if v.Name == name {
			return true
		}
	}
	return false
}

var (
	loadOnce   sync.Once
	categories []Category
	loadErr    error
)

// Categories returns every category in Order.
func Categories() ([]Category, error) {
	loadOnce.Do(func() {
		categories, loadErr = load(Order)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]Category, len(categories))
	copy(out, categories)
	return out, nil
}

// ByName returns the category called name.
func ByName(name string) (Category, bool, error) {
	all, err := Categories()
	if err != nil {
		return Category{}, false, err
	}
	for _, c := range all {
		if c.Name == name {
			return c, true, nil
		}
	}
	return Category{}, false, nil
}

func load(names []string) ([]Category, error) {
	out := make([]Category, 0, len(names))
	for _, name := range names {
		data, err := dataFS.ReadFile("data/" + name + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("read category %s: %w", name, err)
		}
		c, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse category %s: %w", name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Parse decodes a single category document.
func Parse(data []byte) (Category, error) {
	var c Category
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Category{}, err
	}
	if c.Name == "" {
		return Category{}, fmt.Errorf("category has no name")
	}
	for i, v := range c.Vars {
		if v.Name == "" {
			return Category{}, fmt.Errorf("category %s: var %d has no name", c.Name, i)
		}
	}
	return c, nil
}
