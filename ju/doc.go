// Package ju resolves the governing pattern of a chart: its polarity
// (阳遁 Yang / 阴遁 Yin), its pattern number 1..9 and the decan (上元,
// 中元, 下元) that selected it.
//
// Algorithm:
//
//  1. Fu-Tou: take the day pillar's 60-cycle index i and step back to the
//     nearest 甲 or 己 day, i − (i mod 5).
//  2. The branch of that day picks the decan: 子午卯酉 → Upper,
//     寅申巳亥 → Middle, 辰戌丑未 → Lower.
//  3. A fixed per-term table gives the polarity and the three pattern
//     numbers; the decan indexes into them.
//
// The result depends only on (solar term, day pillar).
package ju
