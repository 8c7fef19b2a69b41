// Package eq is the model behind an equalizer's response display: a
// LowCut → Peak → HighCut filter chain, the parameter store feeding it, the
// real-time Processor that filters audio and hands blocks to the display
// side, and the ResponseCurve that turns all of it into a Scene on every
// tick.
//
// Threading:
//
//   - Processor.ProcessBlock runs on the audio goroutine. It only loads the
//     current coefficient snapshot and pushes into lock-free FIFOs.
//   - ResponseCurve.OnTick runs on a single consumer goroutine and owns the
//     analyzers, path producers and chain rebuilds.
//   - Parameters.Set may be called from anywhere; it only marks the
//     ResponseCurve's change gate.
package eq
