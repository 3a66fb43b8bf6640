// Package icon renders the symbols shown next to stack operations.
//
// The icons.variant setting picks between emoji, nerd font glyphs, plain text, kaomoji and colored squares.
package icon

import (
	"github.com/lifo-cli/lifo/key"
	"github.com/spf13/viper"
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var variants = []struct {
	name   string
	render func(*iconDef) string
}{
	{"emoji", func(d *iconDef) string { return d.emoji }},
	{"nerd", func(d *iconDef) string { return d.nerd }},
	{"plain", func(d *iconDef) string { return d.plain }},
	{"kaomoji", func(d *iconDef) string { return d.kaomoji }},
	{"squares", func(d *iconDef) string { return d.squares }},
}

// AvailableVariants lists the values icons.variant accepts.
func AvailableVariants() []string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.name
	}
	return names
}

// Get renders i in the configured variant, or returns an empty string for an unknown one.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}

	selected := viper.GetString(key.IconsVariant)
	for _, v := range variants {
		if v.name == selected {
			return v.render(def)
		}
	}
	return ""
}
