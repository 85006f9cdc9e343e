// Package qimen is a deterministic engine for hour-based rotating-plate
// Qimen Dunjia charts (时家转盘奇门, 拆补 pattern selection).
//
// 🚀 What does it compute?
//
//	Given a wall-clock date-time and a birth year:
//		• Four sexagenary pillars (year, month, day, hour) and the solar term
//		• The pattern (局): polarity, number 1–9 and decan by the Fu-Tou rule
//		• Nine palaces carrying earth and heaven stems, stars, doors, deities
//		  and hidden stems
//		• Void, horse and life-stem markers plus an auspice class per palace
//
// ✨ Guarantees
//
//   - Total: every input time yields a chart, nothing panics
//   - Deterministic: the same input always yields the same chart
//   - Concurrency-safe: only read-only tables are shared
//
// Packages, leaves first:
//
//	cyclic/   — modular index arithmetic and generic cyclic alphabets
//	ganzhi/   — heavenly stems, earthly branches and the 60-pair cycle
//	luoshu/   — the nine palaces, the 3×3 grid, flight order and outer ring
//	calendar/ — four pillars and solar terms from civil date-time
//	ju/       — pattern resolution per term and day
//	plate/    — earth plate, anchors, star/door/deity rotation, hidden stems
//	chart/    — palace assembly, markers, Generate and batch generation
//	schemas/  — embedded JSON Schema of the encoded chart
//	cmd/qimen — command-line interface
//
// Quick layout of the nine palaces as drawn:
//
//	┌───┬───┬───┐
//	│ 4 │ 9 │ 2 │
//	├───┼───┼───┤
//	│ 3 │ 5 │ 7 │
//	├───┼───┼───┤
//	│ 8 │ 1 │ 6 │
//	└───┴───┴───┘
//
//	go get github.com/katalvlaran/qimen
package qimen
