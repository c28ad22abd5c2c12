package summarize

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// summarySchema is the contract for the summarize-pdf response body.
// summary_pdf_url is advisory and deliberately not required.
var summarySchema = map[string]any{
	"type":     "object",
	"required": []any{"document_id", "note_style_summary", "pages"},
	"properties": map[string]any{
		"document_id":        map[string]any{"type": "string", "minLength": 1},
		"note_style_summary": map[string]any{"type": "string"},
		"pages": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"page", "summary"},
				"properties": map[string]any{
					"page":    map[string]any{"type": "integer", "minimum": 1},
					"summary": map[string]any{"type": "string"},
				},
			},
		},
		"summary_pdf_url": map[string]any{"type": "string"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSummary checks a raw response body against the summary schema.
// Returns *ErrInvalidSummary on malformed JSON or schema violations.
func validateSummary(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidSummary{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSummarySchema()
	if err != nil {
		return &ErrInvalidSummary{Err: err}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidSummary{Err: err}
	}
	return nil
}

func compiledSummarySchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(summarySchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://hierarchical-summary.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
