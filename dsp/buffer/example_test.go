package buffer_test

import (
	"fmt"

	"github.com/r-kishimoto-eisys/audioeq/dsp/buffer"
)

func ExampleBuffer() {
	b := buffer.New(4)
	copy(b.Samples(), []float64{1, 2, 3, 4})

	b.Grow(8)
	b.Resize(6)
	b.ZeroRange(1, 5)

	fmt.Println(b.Samples())
	fmt.Println(b.Len(), b.Cap())

	// Output:
	// [1 0 0 0 0 0]
	// 6 8
}

func ExamplePool() {
	pool := buffer.NewPool()

	b := pool.Get(3)
	copy(b.Samples(), []float64{0.5, -0.5, 0.25})
	fmt.Println(b.Samples())

	pool.Put(b)

	// Output:
	// [0.5 -0.5 0.25]
}
