// Package ganzhi defines the two cyclic alphabets of the sexagenary
// calendar and the stem-branch pair built from them.
//
// What:
//
//   - Stem: the 10 heavenly stems 甲乙丙丁戊己庚辛壬癸 (indices 0..9).
//   - Branch: the 12 earthly branches 子丑寅卯辰巳午未申酉戌亥 (0..11).
//   - Pair: an immutable (Stem, Branch) value; Index() is its position in
//     the 60-cycle and PairAt(n) is the inverse, total over all integers.
//
// All text forms are the native script. Translation is left to callers.
//
// Usage:
//
//	p := ganzhi.PairAt(0)       // 甲子
//	p.Index()                   // 0
//	p.Next(1)                   // 乙丑
//	ganzhi.Stem(4).String()     // "戊"
package ganzhi
