// Package schemas embeds the JSON Schema of the encoded chart and
// validates documents against it.
//
// The schema is compiled once on first use with
// github.com/santhosh-tekuri/jsonschema/v5. Validation failures wrap
// ErrInvalidChart so callers can branch with errors.Is.
package schemas
