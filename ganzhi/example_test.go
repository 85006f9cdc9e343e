package ganzhi_test

import (
	"fmt"

	"github.com/katalvlaran/qimen/ganzhi"
)

// ExamplePairAt lists the first and last pairs of the sexagenary cycle and
// shows indices wrap in both directions.
func ExamplePairAt() {
	fmt.Println(ganzhi.PairAt(0), ganzhi.PairAt(1), ganzhi.PairAt(59))
	fmt.Println(ganzhi.PairAt(60), ganzhi.PairAt(-1))

	// Output:
	// 甲子 乙丑 癸亥
	// 甲子 癸亥
}
