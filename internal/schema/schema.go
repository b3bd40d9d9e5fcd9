// Package schema is the validation layer: every entity has a compiled JSON
// Schema for its insert shape and one for its partial-update shape, plus a
// typed parse function producing either the typed payload or a
// ValidationError listing every violated field. Validation is purely
// structural; it never consults storage.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

// ValidationError consolidates every violation found in one payload.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

func newViolation(format string, args ...any) *ValidationError {
	return &ValidationError{Violations: []string{fmt.Sprintf(format, args...)}}
}

// IsValidationError reports whether err (or anything it wraps) is a
// ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func mustCompile(src string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(src), rs); err != nil {
		panic(fmt.Sprintf("schema: compile: %v", err))
	}
	return rs
}

// validate runs data through rs and folds key errors into one
// ValidationError. A body that is not valid JSON at all is reported the
// same way.
func validate(ctx context.Context, rs *jsonschema.Schema, data []byte) error {
	keyErrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return newViolation("invalid JSON payload")
	}
	if len(keyErrs) == 0 {
		return nil
	}

	violations := make([]string, 0, len(keyErrs))
	for _, ke := range keyErrs {
		path := strings.TrimPrefix(ke.PropertyPath, "/")
		if path == "" {
			violations = append(violations, ke.Message)
			continue
		}
		violations = append(violations, fmt.Sprintf("%s: %s", path, ke.Message))
	}

	return &ValidationError{Violations: violations}
}

// unmarshalTyped decodes data into v after schema validation passed.
// Unknown fields are tolerated, matching the schemas. A decode failure at
// this point means a field held a JSON shape the schema tolerates but the
// Go type does not (e.g. a malformed date-time), so it is still surfaced
// as a validation failure.
func unmarshalTyped(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return newViolation("invalid field value: %v", err)
	}
	return nil
}
