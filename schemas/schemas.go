package schemas

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ChartURL is the resource name the chart schema is compiled under.
const ChartURL = "chart.schema.json"

// ErrInvalidChart indicates a document that does not satisfy the chart schema.
var ErrInvalidChart = errors.New("schemas: invalid chart")

//go:embed chart.schema.json
var chartSchema []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ChartSchema returns a copy of the embedded schema document.
func ChartSchema() []byte {
	return bytes.Clone(chartSchema)
}

// Chart returns the compiled chart schema.
func Chart() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(ChartURL, bytes.NewReader(chartSchema)); err != nil {
			compileErr = fmt.Errorf("schemas: add %s: %w", ChartURL, err)
			return
		}
		compiled, compileErr = c.Compile(ChartURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("schemas: compile %s: %w", ChartURL, compileErr)
		}
	})

	return compiled, compileErr
}

// ValidateChart validates an already decoded JSON document, as produced by
// json.Unmarshal into an interface{}.
func ValidateChart(doc interface{}) error {
	s, err := Chart()
	if err != nil {
		return err
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}

	return nil
}

// ValidateJSON decodes b and validates it with ValidateChart.
func ValidateJSON(b []byte) error {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: decode: %w", ErrInvalidChart, err)
	}

	return ValidateChart(doc)
}

// Validate encodes v as JSON and validates the result. It is the
// convenient form for Go values such as *chart.Chart.
func Validate(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("schemas: encode: %w", err)
	}

	return ValidateJSON(b)
}
