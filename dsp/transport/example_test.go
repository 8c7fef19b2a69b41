package transport_test

import (
	"fmt"

	"github.com/cwbudde/algo-eqscope/dsp/transport"
)

func ExampleBlockFifo() {
	fifo, _ := transport.NewBlockFifo(100, 4)
	fmt.Println("slots:", fifo.Cap())

	fifo.Push(transport.Block{Channel: 0, Samples: []float64{1, 2, 3, 4}})

	var out transport.Block
	for fifo.Pop(&out) {
		fmt.Println(out.Channel, out.Samples)
	}
	// Output:
	// slots: 128
	// 0 [1 2 3 4]
}
