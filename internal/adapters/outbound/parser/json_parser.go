// Package parser implements domain.EventParser for JSON input.
package parser

import (
	"bytes"
	"encoding/json"

	"github.com/buger/jsonparser"

	"github.com/eventlint/eventlint/internal/domain"
)

// JSONParser decodes a raw JSON document into a domain.Record.
type JSONParser struct{}

// New creates a JSONParser.
func New() *JSONParser { return &JSONParser{} }

// Parse returns the decoded record, or a *domain.ParseError: InvalidSyntax
// when the text is not well-formed JSON, InvalidShape when the top-level value
// is not a single object (array, scalar, or null). Values are returned
// unchanged, with no coercion or key normalization.
func (p *JSONParser) Parse(raw []byte) (domain.Record, error) {
	data := bytes.TrimSpace(raw)

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return domain.Record{}, domain.NewSyntaxError(err.Error())
	}

	fields, ok := decoded.(map[string]any)
	if !ok {
		return domain.Record{}, domain.NewShapeError()
	}

	// encoding/json drops key order, so walk the raw object once to recover
	// the document order of the top-level keys.
	keys := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	err := jsonparser.ObjectEach(data, func(key, _ []byte, _ jsonparser.ValueType, _ int) error {
		k := string(key)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
		return nil
	})
	if err != nil {
		return domain.Record{}, domain.NewSyntaxError(err.Error())
	}

	return domain.NewRecord(keys, fields), nil
}
