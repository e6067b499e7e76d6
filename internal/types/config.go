package types

import (
	"maps"
	"sort"
)

// GlobalConfig represents the global configuration file (~/.config/exifname/config.yml)
type GlobalConfig struct {
	Pattern     string            `yaml:"pattern"`
	Presets     map[string]string `yaml:"presets,omitempty"` // Named templates selectable with --preset
	Formats     []string          `yaml:"formats"`
	Exiftool    ExiftoolConfig    `yaml:"exiftool"`
	Concurrency int               `yaml:"concurrency,omitempty"`
}

// ExiftoolConfig configures the external metadata tool
type ExiftoolConfig struct {
	Binary string   `yaml:"binary,omitempty"`
	Tags   []string `yaml:"tags,omitempty,flow"` // Limit the dump to these tags
}

// Clone returns a deep copy of the global configuration
func (g *GlobalConfig) Clone() GlobalConfig {
	res := *g
	if len(g.Presets) > 0 {
		res.Presets = maps.Clone(g.Presets)
	}
	if len(g.Formats) > 0 {
		res.Formats = make([]string, len(g.Formats))
		copy(res.Formats, g.Formats)
	}
	if len(g.Exiftool.Tags) > 0 {
		res.Exiftool.Tags = make([]string, len(g.Exiftool.Tags))
		copy(res.Exiftool.Tags, g.Exiftool.Tags)
	}
	return res
}

// ResolvePattern returns the template for a preset name, or the default
// pattern when name is empty.
func (g *GlobalConfig) ResolvePattern(name string) (string, error) {
	if name == "" {
		return g.Pattern, nil
	}
	p, ok := g.Presets[name]
	if !ok {
		return "", ErrPresetNotFound{Name: name}
	}
	return p, nil
}

// PresetNames returns the preset names in sorted order
func (g *GlobalConfig) PresetNames() []string {
	names := make([]string, 0, len(g.Presets))
	for name := range g.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
