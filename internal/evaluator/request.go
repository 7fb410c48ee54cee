package evaluator

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

//go:embed request.schema.json
var requestSchemaJSON []byte

const requestSchemaURL = "schema://evaluate-request.json"

var (
	requestSchemaOnce sync.Once
	requestSchema     *jsonschema.Schema
	requestSchemaErr  error
)

// Request is an evaluation request decoded from untyped arguments, such as
// tool-call parameters. Either Criteria or Pack and ExerciseID identify what
// to evaluate against.
type Request struct {
	Submission string   `json:"submission"`
	Criteria   []string `json:"criteria,omitempty"`
	Pack       string   `json:"pack,omitempty"`
	ExerciseID string   `json:"exercise_id,omitempty"`
}

// Inline reports whether the request carries its own criteria.
func (r *Request) Inline() bool {
	return r.Criteria != nil
}

// DecodeRequest validates args against the request schema and decodes them.
// Shape violations (submission not a string, criteria not a list of strings)
// are reported as *InvalidInputError.
func DecodeRequest(args map[string]any) (*Request, error) {
	if args == nil {
		return nil, &InvalidInputError{Field: "submission", Reason: "is required"}
	}

	// Round-trip through JSON so typed slices ([]string) become the generic
	// values the schema validator works on.
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("arguments are not JSON encodable: %v", err)}
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("arguments are not valid JSON: %v", err)}
	}

	schema, err := compiledRequestSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile request schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("failed to decode arguments: %v", err)}
	}
	return &req, nil
}

func compiledRequestSchema() (*jsonschema.Schema, error) {
	requestSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(requestSchemaJSON, &def); err != nil {
			requestSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(requestSchemaURL, def); err != nil {
			requestSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		requestSchema, requestSchemaErr = c.Compile(requestSchemaURL)
	})
	return requestSchema, requestSchemaErr
}

// schemaError converts the first leaf of a validation failure into an InvalidInputError.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &InvalidInputError{Reason: err.Error()}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	if req, ok := ve.ErrorKind.(*kind.Required); ok && len(req.Missing) > 0 {
		return &InvalidInputError{Field: req.Missing[0], Reason: "is required"}
	}

	field := strings.Join(ve.InstanceLocation, "/")
	switch {
	case len(ve.InstanceLocation) > 0 && ve.InstanceLocation[0] == "criteria":
		return &InvalidInputError{Field: field, Reason: "must be an array of strings"}
	case field == "":
		return &InvalidInputError{Reason: "arguments must be an object"}
	default:
		return &InvalidInputError{Field: field, Reason: "must be a string"}
	}
}
