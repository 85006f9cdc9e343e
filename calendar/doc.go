// Package calendar converts a civil date-time into the four sexagenary
// pillars (year, month, day, hour) and the current solar term.
//
// What:
//
//   - Day pillar: whole civil-day offset from 2024-01-01 (甲子), wrapped into 60.
//   - Solar term: last entry of a fixed (month, day) boundary table that
//     does not exceed the input date; dates before 小寒 fall in 冬至.
//   - Year pillar: solar year (calendar year, minus one before Feb 4)
//     anchored at 1984 = 甲子.
//   - Month pillar: branch from the solar term, stem by the five-tigers rule.
//   - Hour pillar: branch from two-hour buckets, stem by the five-rats rule,
//     with the late-hour rule at 23:00 (the day stem fed to the hour-stem
//     formula advances by one while the day pillar itself stays put).
//
// Boundaries:
//
//	The term table is a fixed calendar-day approximation, not an ephemeris.
//	Wall-clock fields of the supplied time.Time are used as they are; no
//	time zone conversion happens here.
//
// Every function in this package is total: there are no error returns.
package calendar
