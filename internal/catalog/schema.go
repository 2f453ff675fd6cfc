package catalog

import (
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// catalogSchema is the structural contract for descriptor files. Member
// contents beyond this shape pass through unvalidated; semantic checks are
// the extraction pipeline's concern.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["types"],
  "properties": {
    "types": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["typeName"],
        "properties": {
          "typeName": {"type": "string", "minLength": 1},
          "summary": {"type": "string"},
          "properties": {"$ref": "#/definitions/members"},
          "methods": {"$ref": "#/definitions/members"},
          "fields": {"$ref": "#/definitions/members"},
          "events": {"$ref": "#/definitions/members"},
          "globalSettings": {"$ref": "#/definitions/members"},
          "links": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["target"],
              "properties": {
                "target": {"type": "string", "minLength": 1},
                "label": {"type": "string"}
              }
            }
          },
          "baseChain": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  },
  "definitions": {
    "members": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "kind": {"type": "string"},
          "category": {"type": "string"},
          "declaringType": {"type": "string"},
          "type": {"type": "string"},
          "summary": {"type": "string"},
          "default": {"type": "string"}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("catalog.schema.json", strings.NewReader(catalogSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("catalog.schema.json")
	})
	if schemaErr != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", schemaErr)
	}
	return compiledSchema, nil
}
