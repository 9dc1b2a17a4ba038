package cli

import (
	"fmt"
	"os"

	"github.com/hideez/hideezctl/internal/coins"
)

// SchemaParams contains parameters for the Schema command
type SchemaParams struct {
	Common
	OutputPath string
}

// Schema displays or exports the JSON Schema for coin override files, so
// users can validate their overrides before the client loads them.
func Schema(params SchemaParams) error {
	schemaJSON := coins.GetSchemaJSON()

	if params.OutputPath != "" {
		if err := os.WriteFile(params.OutputPath, []byte(schemaJSON), 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", params.OutputPath, err)
		}
		fmt.Fprintf(params.out(), "JSON Schema written to: %s\n", params.OutputPath)
		return nil
	}

	fmt.Fprintln(params.out(), schemaJSON)
	return nil
}
