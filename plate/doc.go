// SPDX-License-Identifier: MIT

// Package plate distributes the symbolic layers of a chart over the nine
// Lo Shu palaces.
//
// Layers, in dependency order:
//
//   - Earth plate (地盘): the nine-stem sequence 戊己庚辛壬癸丁丙乙 laid from
//     palace = pattern number along the magic-square order, forward for
//     Yang and backward for Yin. A bijection onto the nine palaces.
//   - Anchors: the decan leader of the hour (旬首), the palace holding its
//     stem, the palace of the hour stem (甲 is replaced by the leader stem),
//     and the active door palace reached by walking the magic-square order
//     one step per hour elapsed since the leader's branch.
//   - Stars (九星) and heaven stems (天盘): the eight outer stars rotate as
//     a ring so the leader palace's star lands on the hour-stem palace.
//     Each star carries the earth stem of its home; the star of Kun also
//     carries the center's stem as a parasite.
//   - Doors (八门): the same ring rotation towards the active door palace.
//   - Deities (八神): laid from the hour-stem palace, clockwise for Yang
//     and counter-clockwise for Yin.
//   - Hidden stems (暗干): the nine-stem sequence laid again from the hour
//     stem, starting at the active door palace, or at the center when that
//     palace's earth stem already equals the hour stem.
//
// Ring rules:
//
//	Rotations use luoshu.Ring (1,8,3,4,9,2,7,6). The center has no ring
//	slot; wherever a source or target lands on it, Kun (2) stands in.
//
// Guarantees:
//
//   - Every function is total and never panics for calendar-produced input.
//   - The two defensive fallbacks (leader lookup, palace lookup) are
//     reported through Anchors.Fallback rather than an error.
//   - Results are fresh values; the package-level tables are read-only.
//
// Complexity: every layer is O(9).
package plate
