// Package luoshu models the nine palaces of the Lo Shu magic square as a
// fixed 3×3 grid and provides the two traversal orders the chart engine
// rotates over.
//
// What:
//
//   - Palace 1..9: each permanently bound to a name, trigram, element and
//     grid row/column. The binding is static configuration.
//   - Grid: the immutable 3×3 layout (south on top), with bounds checks and
//     row-major index/coordinate conversion.
//   - Order: the magic-square flight order 1→2→…→9 used by the earth plate,
//     the active-door walk and the hidden stems.
//   - Ring: the 8 outer palaces in spatial order 1,8,3,4,9,2,7,6 used by the
//     star, door and deity rotations. The center is never a ring member;
//     Host substitutes it with Kun (2).
//
// Layout:
//
//	┌────┬────┬────┐
//	│ 4  │ 9  │ 2  │
//	├────┼────┼────┤
//	│ 3  │ 5  │ 7  │
//	├────┼────┼────┤
//	│ 8  │ 1  │ 6  │
//	└────┴────┴────┘
//
// Every row, column and diagonal sums to 15.
//
// Complexity: all lookups are O(1) or O(9).
//
// Errors:
//
//   - ErrOutOfBounds: row/column outside the 3×3 grid.
//   - ErrUnknownPalace: a palace number outside 1..9.
package luoshu
