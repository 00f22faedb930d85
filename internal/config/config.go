// Package config loads and validates the project configuration file
// consumed by the CLI, producing the format.Config the engine expects.
package config

import (
	"fmt"
	"os"

	"github.com/hugoduncan/line-sitter/internal/format"
	"gopkg.in/yaml.v3"
)

// DefaultLineLength is used when a config file omits line_length, or
// none is found at all (spec.md §3: "line_length: positive integer
// (default 80)").
const DefaultLineLength = 80

// file is the on-disk shape of the config file. Field names follow the
// engine's configuration surface (spec.md §6).
type file struct {
	LineLength int               `yaml:"line_length"`
	Indents    map[string]string `yaml:"indents"`
}

// validRules is the closed set of indent-rule tags a project may assign
// a symbol to (spec.md §3). map and binding-vector are synthetic tags
// the engine derives structurally — a project cannot assign them.
var validRules = map[string]format.IndentRule{
	"defn":    format.RuleDefn,
	"def":     format.RuleDef,
	"fn":      format.RuleFn,
	"binding": format.RuleBinding,
	"if":      format.RuleIf,
	"case":    format.RuleCase,
	"cond":    format.RuleCond,
	"condp":   format.RuleCondp,
	"cond->":  format.RuleCondArrow,
	"try":     format.RuleTry,
	"do":      format.RuleDo,
}

// Load reads and validates the config file at path. A missing path
// yields format.Config{LineLength: DefaultLineLength} — there is no
// required config file.
func Load(path string) (format.Config, error) {
	if path == "" {
		return format.Config{LineLength: DefaultLineLength}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return format.Config{LineLength: DefaultLineLength}, nil
	}
	if err != nil {
		return format.Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return format.Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return validate(f)
}

func validate(f file) (format.Config, error) {
	lineLength := f.LineLength
	if lineLength == 0 {
		lineLength = DefaultLineLength
	}
	if lineLength < 0 {
		return format.Config{}, fmt.Errorf("line_length must be positive, got %d", lineLength)
	}

	indents := make(map[string]format.IndentRule, len(f.Indents))
	for symbol, tag := range f.Indents {
		rule, ok := validRules[tag]
		if !ok {
			return format.Config{}, fmt.Errorf("indents.%s: %q is not a recognized indent-rule tag", symbol, tag)
		}
		indents[symbol] = rule
	}

	return format.Config{LineLength: lineLength, Indents: indents}, nil
}
