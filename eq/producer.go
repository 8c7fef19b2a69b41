package eq

import (
	"github.com/cwbudde/algo-eqscope/dsp/plot"
	"github.com/cwbudde/algo-eqscope/dsp/spectrum"
	"github.com/cwbudde/algo-eqscope/dsp/transport"
)

// DefaultFloorDB is the analyzer level floor.
const DefaultFloorDB = -48.0

// PathProducer turns one channel's queued audio into analyzer paths. It is
// owned by the consumer goroutine.
type PathProducer struct {
	fifo     *transport.BlockFifo
	analyzer *spectrum.Analyzer
	floorDB  float64

	block  transport.Block
	latest plot.Latest
}

// NewPathProducer drains fifo into analyzer. Levels below floorDB are drawn
// on the floor.
func NewPathProducer(fifo *transport.BlockFifo, analyzer *spectrum.Analyzer, floorDB float64) *PathProducer {
	return &PathProducer{
		fifo:     fifo,
		analyzer: analyzer,
		floorDB:  floorDB,
		block:    transport.Block{Samples: make([]float64, 0, fifo.BlockSize())},
	}
}

// Process drains every queued block, computing one frame per block, and
// converts each frame into a path across bounds. Only the newest path is
// kept. It reports whether a new path was stored.
func (p *PathProducer) Process(bounds plot.Rect, sampleRate float64) bool {
	p.analyzer.SetSampleRate(sampleRate)

	produced := false

	for p.fifo.Pop(&p.block) {
		p.analyzer.Ingest(p.block.Samples)
		p.analyzer.Produce(p.floorDB)

		// Drain frames as they are made so the ring never fills up and
		// drops the newest one.
		for {
			frame, ok := p.analyzer.PopFrame()
			if !ok {
				break
			}

			p.latest.Store(plot.GeneratePath(frame.DB, bounds, frame.Size, frame.BinWidth, p.floorDB))
			produced = true
		}
	}

	return produced
}

// Path returns the most recent analyzer path.
func (p *PathProducer) Path() (plot.Path, bool) {
	return p.latest.Load()
}

// Analyzer returns the underlying analyzer.
func (p *PathProducer) Analyzer() *spectrum.Analyzer { return p.analyzer }
