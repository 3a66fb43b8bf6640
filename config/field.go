package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/style"
	"github.com/spf13/viper"
)

// Field describes a configuration key together with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
	// Allowed lists the accepted values of an enumerated string field.
	Allowed []string
}

// Env returns the environment variable that overrides the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Lifo) + "_"
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Pretty renders the field as a colored, multi-line description for the terminal.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)

	rows := [][2]string{
		{"Key", style.Fg(color.Purple)(f.Key)},
		{"Env", f.Env()},
		{"Value", highlight(viper.Get(f.Key))},
		{"Default", highlight(f.Value)},
		{"Type", f.typeName()},
	}
	if len(f.Allowed) > 0 {
		rows = append(rows, [2]string{"Allowed", strings.Join(f.Allowed, ", ")})
	}

	var b strings.Builder
	b.WriteString(style.Faint(f.Description))
	for _, row := range rows {
		fmt.Fprintf(&b, "\n%s %s", label(fmt.Sprintf("%-8s", row[0]+":")), row[1])
	}
	return b.String()
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(value)
	case []string:
		return style.Fg(color.Yellow)(strings.Join(value, ", "))
	default:
		return fmt.Sprint(value)
	}
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	type field struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Allowed     []string `json:"allowed,omitempty"`
	}

	return json.Marshal(field{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Allowed:     f.Allowed,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}
