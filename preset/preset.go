// Package preset holds named gradient styles: the built-in catalog plus user
// presets loaded from TOML or YAML files.
package preset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sonnes/rangoli/core"
)

// Preset is a named gradient.
type Preset struct {
	Name          string             `toml:"name" yaml:"name" json:"name"`
	Colors        []string           `toml:"colors" yaml:"colors" json:"colors"`
	Category      string             `toml:"category,omitempty" yaml:"category,omitempty" json:"category,omitempty"`
	Interpolation core.Interpolation `toml:"interpolation,omitempty" yaml:"interpolation,omitempty" json:"interpolation,omitempty"`
}

// Style converts the preset to a core.Style.
func (p Preset) Style() core.Style {
	mode, err := core.ParseInterpolation(string(p.Interpolation))
	if err != nil {
		mode = core.Smooth
	}
	return core.Style{Stops: slices.Clone(p.Colors), Interpolation: mode}
}

// Validate checks that the preset has a name, at least two well-formed colors
// and a known interpolation.
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset has no name")
	}
	if len(p.Colors) < 2 {
		return fmt.Errorf("preset %q: need at least 2 colors, got %d", p.Name, len(p.Colors))
	}
	for _, c := range p.Colors {
		if !core.ValidHex(c) {
			return fmt.Errorf("preset %q: %w: %q", p.Name, core.ErrInvalidHex, c)
		}
	}
	if _, err := core.ParseInterpolation(string(p.Interpolation)); err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return nil
}

// Catalog is an ordered set of presets with unique, case-insensitive names.
type Catalog struct {
	presets []Preset
}

// Builtin returns a fresh catalog of the built-in presets.
func Builtin() *Catalog {
	c := &Catalog{}
	for _, p := range builtin {
		c.presets = append(c.presets, clone(p))
	}
	return c
}

// All returns every preset in catalog order.
func (c *Catalog) All() []Preset {
	out := make([]Preset, len(c.presets))
	for i, p := range c.presets {
		out[i] = clone(p)
	}
	return out
}

// Upsert adds p or replaces the preset with the same name.
func (c *Catalog) Upsert(p Preset) {
	for i, e := range c.presets {
		if strings.EqualFold(e.Name, p.Name) {
			c.presets[i] = clone(p)
			return
		}
	}
	c.presets = append(c.presets, clone(p))
}

// Merge upserts every preset in ps.
func (c *Catalog) Merge(ps []Preset) {
	for _, p := range ps {
		c.Upsert(p)
	}
}

// Lookup finds a preset by name, ignoring case. Unknown names fail with
// the closest fuzzy matches as suggestions.
func (c *Catalog) Lookup(name string) (Preset, error) {
	for _, p := range c.presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return clone(p), nil
		}
	}

	suggestions := c.Search(name)
	if len(suggestions) == 0 {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	names := make([]string, 0, 3)
	for _, p := range suggestions[:min(3, len(suggestions))] {
		names = append(names, p.Name)
	}
	return Preset{}, fmt.Errorf("unknown preset %q (did you mean %s?)", name, strings.Join(names, ", "))
}

// Search returns presets whose names fuzzily match query, best first. An
// empty query returns nothing.
func (c *Catalog) Search(query string) []Preset {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, names(c.presets))
	out := make([]Preset, len(matches))
	for i, m := range matches {
		out[i] = clone(c.presets[m.Index])
	}
	return out
}

// InCategory returns the presets in category, ignoring case.
func (c *Catalog) InCategory(category string) []Preset {
	var out []Preset
	for _, p := range c.presets {
		if strings.EqualFold(p.Category, category) {
			out = append(out, clone(p))
		}
	}
	return out
}

// names adapts a preset list to fuzzy.Source.
type names []Preset

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }

func clone(p Preset) Preset {
	p.Colors = slices.Clone(p.Colors)
	return p
}
