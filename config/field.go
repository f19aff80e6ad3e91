package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a setting with its default value.
// Allowed, when set, is the closed set of values of a string field.
type Field struct {
	Key         string
	Value       any
	Description string
	Allowed     []string
}

// Env is the environment variable overriding the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Miru + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Type names the kind of value the field holds.
func (f *Field) Type() string {
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

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Env         string   `json:"env"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Type        string   `json:"type"`
		Allowed     []string `json:"allowed,omitempty"`
		Description string   `json:"description"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Type:        f.Type(),
		Allowed:     f.Allowed,
		Description: f.Description,
	})
}

// Pretty renders the field for "miru config info".
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(fieldTemplate.Execute(&b, f))
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
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var fieldTemplate = lo.Must(template.New("field").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"purple":  style.Fg(color.Purple),
	"cyan":    style.Fg(color.Cyan),
	"current": func(k string) any { return viper.Get(k) },
	"hl":      highlight,
	"join":    strings.Join,
}).Parse(`{{ purple .Key }} {{ faint .Type }}
{{ faint .Description }}{{ with .Allowed }}
{{ cyan "one of" }}  {{ join . ", " }}{{ end }}
{{ cyan "current" }} {{ hl (current .Key) }}
{{ cyan "default" }} {{ hl .Value }}
{{ cyan "env" }}     {{ .Env }}`))
