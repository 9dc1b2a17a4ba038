package coins

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for coin override files
func GetSchemaJSON() string {
	return schemaJSON
}

// parserFor picks a koanf parser by file extension. YAML is the default,
// matching the preferred override name.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kjson.Parser()
	case ".toml":
		return toml.Parser()
	default:
		return kyaml.Parser()
	}
}

// validateOverrides checks an override file against the coin-table schema.
// The content is converted to a JSON-compatible structure per its format
// before validation.
func validateOverrides(path string, content []byte) error {
	var data interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("invalid YAML syntax in %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("invalid JSON syntax in %s: %w", path, err)
		}
	case ".toml":
		parsed, err := toml.Parser().Unmarshal(content)
		if err != nil {
			return fmt.Errorf("invalid TOML syntax in %s: %w", path, err)
		}
		data = parsed
	default:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("invalid syntax in %s: %w", path, err)
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", path, err)
	}

	if !result.Valid() {
		var b strings.Builder
		fmt.Fprintf(&b, "invalid coin overrides in %s:", path)
		for _, desc := range result.Errors() {
			fmt.Fprintf(&b, "\n  - %s: %s", desc.Field(), desc.Description())
		}
		return fmt.Errorf("%s", b.String())
	}
	return nil
}
