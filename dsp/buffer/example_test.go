package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
)

func ExampleBuffer() {
	b := buffer.New(0)
	_ = b.SetData([]float32{1, 2, 3})
	fmt.Println(b.Data())

	_ = b.Resize(5)
	fmt.Println(b.Data())

	_, err := b.At(7)
	fmt.Println(err)

	// Output:
	// [1 2 3]
	// [0 0 0 0 0]
	// buffer: index out of range: 7 not in [0, 5)
}
