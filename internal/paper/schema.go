package paper

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	paperSchemaName = "paper"
	maxBlocks       = 100
	maxBlockCount   = 200
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ConfigError lists everything wrong with a paper config. Widths holds
// the constraints the engine cannot represent; each also appears in
// Violations.
type ConfigError struct {
	Violations []string
	Widths     []*problemgen.WidthError
}

func (e *ConfigError) Error() string {
	if len(e.Violations) == 1 {
		return "invalid paper config: " + e.Violations[0]
	}
	return fmt.Sprintf("invalid paper config: %d problems: %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

func (e *ConfigError) Unwrap() []error {
	errs := make([]error, len(e.Widths))
	for i, w := range e.Widths {
		errs[i] = w
	}
	return errs
}

// Validate checks a config against the paper schema, the cross-field rules
// the schema cannot express and the engine's width limits. Returns
// *ConfigError on failure.
func Validate(cfg PaperConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal paper config: %w", err)
	}
	if err := validateJSON(raw); err != nil {
		return err
	}

	var (
		violations []string
		widths     []*problemgen.WidthError
	)
	for i, b := range cfg.Blocks {
		c := b.Constraints
		for _, w := range problemgen.CheckWidths(b.Type, c) {
			widths = append(widths, w)
			violations = append(violations, fmt.Sprintf("/blocks/%d/constraints/%s: %d exceeds the limit of %d for %s",
				i, w.Field, w.Requested, w.Max, w.Type))
		}
		if c.PercentageMin != nil && c.PercentageMax != nil && *c.PercentageMin > *c.PercentageMax {
			violations = append(violations, fmt.Sprintf("/blocks/%d/constraints: percentageMin %d exceeds percentageMax %d",
				i, *c.PercentageMin, *c.PercentageMax))
		}
		if c.MinAnswer != nil && c.MaxAnswer != nil && *c.MinAnswer > *c.MaxAnswer {
			violations = append(violations, fmt.Sprintf("/blocks/%d/constraints: minAnswer %d exceeds maxAnswer %d",
				i, *c.MinAnswer, *c.MaxAnswer))
		}
	}
	if violations != nil {
		return &ConfigError{Violations: violations, Widths: widths}
	}
	return nil
}

// validateJSON validates a raw JSON paper document against the schema.
func validateJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(paperSchemaName, paperSchema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", paperSchemaName, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &ConfigError{Violations: violationsOf(verr)}
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// violationsOf flattens a validation error tree into one line per leaf.
func violationsOf(verr *jsonschema.ValidationError) []string {
	p := message.NewPrinter(language.English)
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, fmt.Sprintf("/%s: %s",
				strings.Join(e.InstanceLocation, "/"), e.ErrorKind.LocalizedString(p)))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	return out
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name string, definition func() map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain JSON values, so round-trip the definition.
	defBytes, err := json.Marshal(definition())
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

func intRange(lo, hi int) map[string]any {
	return map[string]any{"type": "integer", "minimum": lo, "maximum": hi}
}

var (
	anyInt  = map[string]any{"type": "integer"}
	anyStr  = map[string]any{"type": "string"}
	anyBool = map[string]any{"type": "boolean"}
)

// paperSchema builds the JSON schema of a paper document.
func paperSchema() map[string]any {
	typeTags := make([]string, 0, len(problemgen.AllTypes()))
	for _, t := range problemgen.AllTypes() {
		typeTags = append(typeTags, t.String())
	}
	levelNames := make([]string, len(levels))
	for i, l := range levels {
		levelNames[i] = string(l)
	}

	constraints := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"digits":              intRange(1, 30),
			"rows":                intRange(2, 30),
			"dividendDigits":      intRange(1, 20),
			"divisorDigits":       intRange(1, 20),
			"multiplicandDigits":  intRange(1, 20),
			"multiplierDigits":    intRange(0, 20),
			"rootDigits":          intRange(1, 30),
			"cubeRootDigits":      intRange(1, 30),
			"percentageMin":       intRange(1, 100),
			"percentageMax":       intRange(1, 100),
			"numberDigits":        intRange(1, 10),
			"base":                anyInt,
			"firstDigits":         intRange(1, 30),
			"secondDigits":        intRange(1, 30),
			"multiplier":          intRange(12, 19),
			"multiplierRange":     intRange(21, 91),
			"divisor":             intRange(2, 9),
			"divisorCheck":        anyInt,
			"tableNumber":         intRange(1, 99),
			"powerOf10":           anyInt,
			"minAnswer":           anyInt,
			"maxAnswer":           anyInt,
			"allowBorrow":         anyBool,
			"allowCarry":          anyBool,
			"funWith9Case":        anyStr,
			"funWith5Case":        anyStr,
			"funWith10Case":       anyStr,
			"divideBy9sCase":      anyStr,
			"divideBy11sCase":     anyStr,
			"multiplicationCase":  anyStr,
			"fractionCase":        anyStr,
			"divisibilityCase":    anyStr,
			"division9_8_7_6Case": anyStr,
			"division91_121Case":  anyStr,
			"bodmasDifficulty":    map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard", "mix"}},
		},
	}

	block := map[string]any{
		"type":                 "object",
		"required":             []string{"type"},
		"additionalProperties": false,
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "maxLength": 64},
			"type":        map[string]any{"type": "string", "enum": typeTags},
			"count":       intRange(1, maxBlockCount),
			"constraints": constraints,
			"title":       map[string]any{"type": "string", "maxLength": 200},
		},
	}

	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"level":       map[string]any{"type": "string", "enum": levelNames},
			"title":       map[string]any{"type": "string", "maxLength": 200},
			"orientation": map[string]any{"type": "string", "enum": []string{string(Portrait), string(Landscape)}},
			"blocks": map[string]any{
				"type":     "array",
				"maxItems": maxBlocks,
				"items":    block,
			},
		},
	}
}
