// SPDX-License-Identifier: MIT

// Package chart assembles a complete hour chart (时家转盘奇门) from a civil
// date-time and a birth year.
//
// Pipeline:
//
//	time.Time ─► calendar.Resolve ─► ju.Resolve ─► plate.Build ─► markers ─► *Chart
//
// Generate is the single entry point. It is total: every input time yields
// a chart, an unparsable birth year silently becomes 1990, and the
// defensive fallbacks inside plate never surface as errors.
//
// Markers attached per palace:
//
//   - Void (空亡): fixed palaces per leader stem.
//   - Horse (马星): one palace chosen by the triad of the hour branch.
//   - Life stem (年命): the birth-year stem appears in the earth or heaven stack.
//   - Auspice: 吉 for 开休生, 凶 for 死惊伤, 平 otherwise, with a fixed note
//     that gains a void suffix.
//
// Batch generation (GenerateAll) fans requests over a bounded errgroup and
// keeps the input order. Series builds evenly spaced requests for a range.
//
// Concurrency: Generate shares only read-only tables and is safe for
// concurrent use.
//
// Complexity: O(9) per chart.
package chart
