// Package payload provides typed field extraction from untyped JSON request
// bodies. Every adapter builds on it; validation failures carry the exact
// field name so clients can correct the request.
package payload

import (
	"fmt"
	"io"
	"math"
	"strings"

	app_errors "trans-gate/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// Body wraps a parsed JSON object.
type Body struct {
	fields gjson.Result
}

// ParseOptions control body parsing behavior.
type ParseOptions struct {
	// AllowEmpty treats an empty request body as an empty object instead of
	// a validation error.
	AllowEmpty bool
}

// Parse reads the raw request body and validates that it is a JSON object.
func Parse(c *gin.Context, options ParseOptions) (Body, *app_errors.APIError) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return Body{}, app_errors.NewValidationError("Failed to read request body")
	}

	if strings.TrimSpace(string(raw)) == "" {
		if options.AllowEmpty {
			return Body{}, nil
		}
		return Body{}, app_errors.NewValidationError("Request body is required")
	}

	if !gjson.ValidBytes(raw) {
		return Body{}, app_errors.NewValidationError("Invalid JSON body")
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return Body{}, app_errors.NewValidationError("JSON body must be an object")
	}

	return Body{fields: parsed}, nil
}

// RequireString returns the named field, failing when absent or not a string.
func (b Body) RequireString(field string) (string, *app_errors.APIError) {
	value := b.fields.Get(field)
	if value.Type != gjson.String {
		return "", app_errors.NewValidationError(fmt.Sprintf("%q must be a string", field))
	}
	return value.String(), nil
}

// OptionalString returns the named field when present. A present value of
// the wrong type is a validation error.
func (b Body) OptionalString(field string) (string, bool, *app_errors.APIError) {
	value := b.fields.Get(field)
	if !value.Exists() {
		return "", false, nil
	}
	if value.Type != gjson.String {
		return "", false, app_errors.NewValidationError(fmt.Sprintf("%q must be a string", field))
	}
	return value.String(), true, nil
}

// OptionalBool returns the named field when present. A present value of the
// wrong type is a validation error.
func (b Body) OptionalBool(field string) (bool, bool, *app_errors.APIError) {
	value := b.fields.Get(field)
	if !value.Exists() {
		return false, false, nil
	}
	if value.Type != gjson.True && value.Type != gjson.False {
		return false, false, app_errors.NewValidationError(fmt.Sprintf("%q must be a boolean", field))
	}
	return value.Bool(), true, nil
}

// OptionalNumber returns the named field when present. NaN is rejected along
// with non-numeric types.
func (b Body) OptionalNumber(field string) (float64, bool, *app_errors.APIError) {
	value := b.fields.Get(field)
	if !value.Exists() {
		return 0, false, nil
	}
	if value.Type != gjson.Number || math.IsNaN(value.Float()) {
		return 0, false, app_errors.NewValidationError(fmt.Sprintf("%q must be a number", field))
	}
	return value.Float(), true, nil
}

// RequireStringArray returns the named field as a string slice, failing when
// absent, not an array, or containing non-string elements.
func (b Body) RequireStringArray(field string) ([]string, *app_errors.APIError) {
	value := b.fields.Get(field)
	items, ok := stringSlice(value)
	if !ok {
		return nil, app_errors.NewValidationError(fmt.Sprintf("%q must be an array of strings", field))
	}
	return items, nil
}

// OptionalStringArray returns the named field as a string slice when present.
func (b Body) OptionalStringArray(field string) ([]string, bool, *app_errors.APIError) {
	value := b.fields.Get(field)
	if !value.Exists() {
		return nil, false, nil
	}
	items, ok := stringSlice(value)
	if !ok {
		return nil, false, app_errors.NewValidationError(fmt.Sprintf("%q must be an array of strings", field))
	}
	return items, true, nil
}

// RequireStringOrArray accepts either a single string or an array of strings
// and reports which shape the client sent.
func (b Body) RequireStringOrArray(field string) (items []string, isArray bool, apiErr *app_errors.APIError) {
	value := b.fields.Get(field)
	if value.Type == gjson.String {
		return []string{value.String()}, false, nil
	}
	if items, ok := stringSlice(value); ok {
		return items, true, nil
	}
	return nil, false, app_errors.NewValidationError(fmt.Sprintf("%q must be a string or an array of strings", field))
}

func stringSlice(value gjson.Result) ([]string, bool) {
	if !value.IsArray() {
		return nil, false
	}
	elements := value.Array()
	items := make([]string, 0, len(elements))
	for _, element := range elements {
		if element.Type != gjson.String {
			return nil, false
		}
		items = append(items, element.String())
	}
	return items, true
}
