package audio

import (
	"encoding/binary"
	"math"
)

// pcmReader renders pump output as interleaved stereo float32 little-endian
// frames, the layout oto.FormatFloat32LE expects.
type pcmReader struct {
	pump        *Pump
	left, right []float64
	pos         int
}

func newPCMReader(p *Pump) *pcmReader {
	return &pcmReader{pump: p}
}

// Read fills p with whole frames, stepping the pump whenever the current
// block is used up. It never allocates.
func (r *pcmReader) Read(p []byte) (int, error) {
	const frameBytes = 8

	frames := len(p) / frameBytes
	for i := range frames {
		if r.pos >= len(r.left) {
			r.left, r.right = r.pump.Step()
			r.pos = 0
		}

		off := i * frameBytes
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(r.left[r.pos])))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(r.right[r.pos])))
		r.pos++
	}

	return frames * frameBytes, nil
}
