package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	genschema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// JSONSchema declares the schema for Toggle values: either a plain
// boolean or one of the accepted spellings.
func (Toggle) JSONSchema() *genschema.Schema {
	return &genschema.Schema{
		OneOf: []*genschema.Schema{
			{Type: "boolean"},
			{Type: "string", Enum: []any{"on", "off", "true", "false", "yes", "no"}},
		},
	}
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledSchema generates the options schema from the Options struct
// and compiles it once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		reflector := genschema.Reflector{ExpandedStruct: true}
		raw, err := json.Marshal(reflector.Reflect(&Options{}))
		if err != nil {
			schemaErr = fmt.Errorf("marshal options schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("options.json", strings.NewReader(string(raw))); err != nil {
			schemaErr = fmt.Errorf("add options schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("options.json")
	})
	return schema, schemaErr
}

// validateDocument checks a decoded configuration document against the
// options schema. Unknown keys and mistyped values are rejected.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return &ConfigError{Err: err}
	}
	if err := sch.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return &ConfigError{
				Field: strings.TrimPrefix(ve.InstanceLocation, "/"),
				Err:   err,
			}
		}
		return &ConfigError{Err: err}
	}
	return nil
}
