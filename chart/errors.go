// SPDX-License-Identifier: MIT
// Package: qimen/chart
//
// errors.go — sentinel errors for batch generation.
//
// Error policy:
//   • Generate has no error path; only batch helpers return errors.
//   • Callers branch with errors.Is; context is attached with %w.

package chart

import "errors"

// ErrEmptyRange indicates a Series whose end lies before its start.
var ErrEmptyRange = errors.New("chart: empty time range")

// ErrBadStep indicates a non-positive Series step.
var ErrBadStep = errors.New("chart: step must be positive")

// ErrBadWorkers indicates a non-positive worker count for GenerateAll.
var ErrBadWorkers = errors.New("chart: workers must be positive")
