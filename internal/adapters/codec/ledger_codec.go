// Package codec converts ledgers to and from their stored JSON form.
package codec

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/comitanigiacomo/kanso-ledger/internal/core/domain"
)

const schemaURL = "schema://ledger.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// LedgerSchema is the fixed wire shape: an array of at most 30 day records.
func LedgerSchema() map[string]any {
	score := map[string]any{"type": "integer", "minimum": domain.MinScore, "maximum": domain.MaxScore}
	counter := map[string]any{"type": "integer", "minimum": 0}

	props := map[string]any{
		"date":              map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"day":               map[string]any{"type": "string"},
		"fullDate":          map[string]any{"type": "string"},
		"totalTime":         counter,
		"sessionsCompleted": counter,
	}
	required := []any{"date", "totalTime", "sessionsCompleted"}
	for _, s := range domain.AllSkills {
		props[s.String()] = score
		required = append(required, s.String())
	}

	return map[string]any{
		"type":     "array",
		"maxItems": domain.WindowBound,
		"items": map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON values, not Go literals.
		raw, err := json.Marshal(LedgerSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal ledger schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse ledger schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add ledger schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Encode renders a ledger as its JSON array. A nil ledger encodes as [].
func Encode(l domain.Ledger) ([]byte, error) {
	if l == nil {
		l = domain.Ledger{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("codec: encode ledger: %w", err)
	}
	return data, nil
}

// Decode parses and validates a stored ledger. Shape or invariant violations
// are returned as *domain.ValidationError.
func Decode(data []byte) (domain.Ledger, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ValidationError{Field: "ledger", Reason: "malformed JSON: " + err.Error()}
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, &domain.ValidationError{Field: "ledger", Reason: err.Error()}
	}

	var l domain.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, &domain.ValidationError{Field: "ledger", Reason: err.Error()}
	}
	if err := l.CheckInvariants(); err != nil {
		return nil, err
	}
	return l, nil
}
