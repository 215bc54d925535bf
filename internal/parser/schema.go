package parser

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

const mindMapSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://job-canvas.dev/schemas/mind-map.json",
  "type": "object",
  "required": ["centerTopic", "branches"],
  "properties": {
    "centerTopic": { "type": "string", "minLength": 1 },
    "branches": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": { "type": "string" },
          "color": { "type": "string" },
          "children": {
            "type": ["array", "null"],
            "items": {
              "type": "object",
              "required": ["text"],
              "properties": { "text": { "type": "string" } }
            }
          }
        }
      }
    }
  }
}`

const flowDiagramSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://job-canvas.dev/schemas/flow-diagram.json",
  "type": "object",
  "required": ["nodes", "connections"],
  "properties": {
    "title": { "type": "string" },
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "text"],
        "properties": {
          "id": { "type": "string" },
          "text": { "type": "string" },
          "type": { "type": "string" }
        }
      }
    },
    "connections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["from", "to"],
        "properties": {
          "from": { "type": "string" },
          "to": { "type": "string" },
          "label": { "type": "string" }
        }
      }
    }
  }
}`

const stickyNoteSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://job-canvas.dev/schemas/sticky-note.json",
  "type": "object",
  "required": ["text", "color"],
  "properties": {
    "text": { "type": "string" },
    "color": { "type": "string" }
  }
}`

var (
	mindMapSchema     = mustCompile("https://job-canvas.dev/schemas/mind-map.json", mindMapSchemaJSON)
	flowDiagramSchema = mustCompile("https://job-canvas.dev/schemas/flow-diagram.json", flowDiagramSchemaJSON)
	stickyNoteSchema  = mustCompile("https://job-canvas.dev/schemas/sticky-note.json", stickyNoteSchemaJSON)
)

// mustCompile panics on error; the schemas are constants.
func mustCompile(url, src string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("parser: unmarshal schema %s: %v", url, err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("parser: add schema %s: %v", url, err))
	}
	s, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("parser: compile schema %s: %v", url, err))
	}
	return s
}

// decodeDocument decodes JSON the way the schema library expects (numbers as json.Number).
func decodeDocument(raw string) (any, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSON, err)
	}
	return doc, nil
}

func validate(s *jsonschema.Schema, doc any) error {
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	return nil
}
