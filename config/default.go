// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/lectern-cli/lectern/constant"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/style"
	"github.com/lectern-cli/lectern/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Lectern + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field, key.DefinedFieldsCount)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func register(k string, value any, description string) {
	Default[k] = Field{Key: k, Value: value, Description: description}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.PortalBaseURL, "https://cbiz.yanhekt.cn", "Base URL of the course-streaming portal API")
	register(key.DownloadDir, where.Downloads(), "Destination directory for captured lectures")
	register(key.DownloadTranscoder, "ffmpeg", "External transcoder binary used for segmented (HLS) sources")
	register(key.HistorySaveOnDownload, true, "Record captured lectures in the local history registry")
	register(key.SearchShowQuerySuggestions, true, "Suggest previously used schedule filters while typing")
	register(key.IconsVariant, "plain", "Visual icon variant (emoji, nerd, plain)")
	register(key.SessionConfirmDownload, true, "Ask for confirmation before starting a download")
	register(key.SessionLectureLimit, 50, "Maximum number of lectures listed in the selection menu")
	register(key.LogsWrite, false, "Write diagnostic logs to the config directory")
	register(key.LogsLevel, "info", "Minimum severity for written logs (trace..panic)")
	register(key.LogsJson, false, "Write logs in JSON format")
	register(key.CliColored, true, "Colorize CLI help output")
	register(key.CliVersionCheck, true, "Check for newer releases on startup")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(style.Purple),
	"blue":   style.Fg(style.Blue),
	"value":  func(k string) any { return viper.Get(k) },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(style.Green)(b)
			}
			return style.Fg(style.Red)(b)
		case string:
			return style.Fg(style.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}`))
