package calendar_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/qimen/calendar"
)

// ExampleResolve shows the late-hour rule: at 23:30 the hour stem is taken
// from the next day while the day pillar stays put.
func ExampleResolve() {
	for _, h := range []int{22, 23} {
		p, term := calendar.Resolve(time.Date(2024, time.January, 1, h, 30, 0, 0, time.UTC))
		fmt.Println(p.Year, p.Month, p.Day, p.Hour, term)
	}

	// Output:
	// 癸卯 甲子 甲子 乙亥 冬至
	// 癸卯 甲子 甲子 丙子 冬至
}

// ExampleTermOf resolves a few civil dates against the fixed boundary table.
func ExampleTermOf() {
	fmt.Println(calendar.TermOf(time.January, 5))
	fmt.Println(calendar.TermOf(time.February, 4))
	fmt.Println(calendar.TermOf(time.June, 21))

	// Output:
	// 冬至
	// 立春
	// 夏至
}
