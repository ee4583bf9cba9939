package core_test

import (
	"fmt"

	"github.com/r-kishimoto-eisys/audioeq/dsp/core"
)

func ExampleClamp() {
	fmt.Println(core.Clamp(1.7, -1, 1))
	fmt.Println(core.Clamp(-0.25, -1, 1))

	// Output:
	// 1
	// -0.25
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	buf[2], buf[3] = 3, 4
	fmt.Println(buf)

	core.Zero(buf[:2])
	fmt.Println(buf)

	// Output:
	// [1 2 3 4]
	// [0 0 3 4]
}
