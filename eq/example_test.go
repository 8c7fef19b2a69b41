package eq_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eqscope/eq"
)

func ExampleChain() {
	s := eq.DefaultSettings()
	s.Peak.GainDB = 6
	s.LowCut.Bypassed = true
	s.HighCut.Bypassed = true

	chain := eq.NewChain(48000)
	chain.Rebuild(s, 48000)

	fmt.Printf("750 Hz: %+.2f dB\n", 20*math.Log10(chain.MagnitudeResponse(750, 48000)))

	s.Peak.Bypassed = true
	chain.Rebuild(s, 48000)
	fmt.Printf("bypassed: %v\n", chain.MagnitudeResponse(750, 48000))
	// Output:
	// 750 Hz: +6.00 dB
	// bypassed: 1
}

func ExampleGate() {
	var g eq.Gate

	g.MarkDirty()
	g.MarkDirty()
	g.MarkDirty()

	fmt.Println(g.ConsumeDirty(), g.ConsumeDirty())
	// Output: true false
}

func ExampleLookup() {
	id, err := eq.Lookup("peak_gain")
	if err != nil {
		panic(err)
	}

	p := eq.NewParameters(eq.DefaultSettings())
	v, _ := p.Set(id, 40)

	fmt.Printf("%s = %v\n", id, v)
	// Output: Peak Gain = 24
}
