// Package schema validates project manifest documents against the hub's
// JSON Schema file.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/jsonc"
)

// Validator checks documents against the project manifest schema. A nil
// Validator accepts every document, which is what a hub without a schema
// file gets.
type Validator struct {
	schema *jsonschema.Schema
}

// LoadValidator compiles the schema file at path. A missing file yields a
// nil validator; a malformed one is an error.
func LoadValidator(path string) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	// Hand-authored schema files may carry comments and trailing commas.
	// Strip them before compiling as standard JSON.
	stripped := jsonc.ToJSON(data)

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("project_manifest.json", bytes.NewReader(stripped)); err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile("project_manifest.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate checks raw manifest bytes against the schema. The document is
// decoded without a target type so unknown keys participate in
// validation. A nil receiver accepts anything.
func (v *Validator) Validate(doc []byte) error {
	if v == nil || v.schema == nil {
		return nil
	}

	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return v.schema.Validate(value)
}
