package catalog

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-catalog.json"

// documentSchema only constrains the top-level shape. Records are
// normalized field by field instead of being rejected.
var documentSchema = map[string]any{
	"type": "array",
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, documentSchema); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateShape checks a decoded document against documentSchema.
func validateShape(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrNotArray, err)
	}
	return nil
}
