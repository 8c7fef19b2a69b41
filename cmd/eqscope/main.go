// Command eqscope displays the response of a LowCut/Peak/HighCut filter
// chain together with live spectrum analyzer curves.
//
// Usage:
//
//	eqscope response [--table] [--set name=value ...]
//	eqscope snapshot --out scene.png [--signal sweep] [--blocks 200]
//	eqscope live [--headless] [--duration 10s]
//	eqscope windows [--size 2048] [window-name ...]
//	eqscope config
//
// Settings come from defaults, an optional YAML file (--config) and
// EQSCOPE_* environment variables, e.g. EQSCOPE_AUDIO_SAMPLE_RATE=44100.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
