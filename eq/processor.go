package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eqscope/dsp/core"
	"github.com/cwbudde/algo-eqscope/dsp/filter/biquad"
	"github.com/cwbudde/algo-eqscope/dsp/transport"
)

// Channel indices for the two analyzer FIFOs.
const (
	ChannelLeft = iota
	ChannelRight
	numChannels
)

// DefaultFifoCapacity is the number of blocks each channel FIFO holds.
const DefaultFifoCapacity = 100

// Processor is the real-time side: it filters stereo audio through the
// current chain snapshot and copies the result into one BlockFifo per
// channel. After Prepare, ProcessBlock neither blocks nor allocates.
type Processor struct {
	chain    *Chain
	capacity int

	cfg     core.ProcessorConfig
	fifos   [numChannels]*transport.BlockFifo
	filters [numChannels]*biquad.Chain

	applied  *ChainCoefficients
	sections [NumSections]biquad.Coefficients
}

// NewProcessor returns a Processor reading coefficients from chain. capacity
// is the per-channel FIFO depth in blocks.
func NewProcessor(chain *Chain, capacity int) *Processor {
	if capacity <= 0 {
		capacity = DefaultFifoCapacity
	}

	return &Processor{chain: chain, capacity: capacity}
}

// Prepare allocates FIFOs and filter state for blocks of up to blockSize
// samples at sampleRate, and redesigns the chain if the rate changed.
// It must not run concurrently with ProcessBlock.
func (p *Processor) Prepare(sampleRate float64, blockSize int) error {
	cfg := core.NewProcessorConfig(
		core.WithSampleRate(sampleRate),
		core.WithBlockSize(blockSize),
		core.WithChannels(numChannels),
	)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("eq: prepare: %w", err)
	}

	for ch := range p.fifos {
		fifo, err := transport.NewBlockFifo(p.capacity, cfg.BlockSize)
		if err != nil {
			return fmt.Errorf("eq: prepare channel %d: %w", ch, err)
		}

		p.fifos[ch] = fifo
	}

	if snap := p.chain.Coefficients(); snap.SampleRate != cfg.SampleRate {
		p.chain.Rebuild(snap.Settings, cfg.SampleRate)
	}

	p.applied = p.chain.Coefficients()
	p.applied.Sections(&p.sections)

	for ch := range p.filters {
		p.filters[ch] = biquad.NewChain(p.sections[:])
	}

	p.cfg = cfg

	return nil
}

// SampleRate returns the prepared sample rate.
func (p *Processor) SampleRate() float64 { return p.cfg.SampleRate }

// BlockSize returns the prepared maximum block size.
func (p *Processor) BlockSize() int { return p.cfg.BlockSize }

// Fifo returns the FIFO for channel ch, or nil before Prepare.
func (p *Processor) Fifo(ch int) *transport.BlockFifo {
	if ch < 0 || ch >= numChannels {
		return nil
	}

	return p.fifos[ch]
}

// ProcessBlock filters left and right in place and queues copies of them
// for analysis. right may be nil for mono input, in which case left feeds
// both FIFOs. Blocks longer than the prepared block size are queued in
// block-size pieces. Does nothing before Prepare.
func (p *Processor) ProcessBlock(left, right []float64) {
	if p.fifos[ChannelLeft] == nil {
		return
	}

	if snap := p.chain.Coefficients(); snap != p.applied {
		snap.Sections(&p.sections)
		for _, f := range p.filters {
			f.UpdateCoefficients(p.sections[:])
		}

		p.applied = snap
	}

	p.filters[ChannelLeft].ProcessBlock(left)
	if right != nil {
		p.filters[ChannelRight].ProcessBlock(right)
	} else {
		right = left
	}

	p.push(ChannelLeft, left)
	p.push(ChannelRight, right)
}

func (p *Processor) push(ch int, samples []float64) {
	fifo := p.fifos[ch]
	n := fifo.BlockSize()

	for len(samples) > 0 {
		k := min(n, len(samples))
		fifo.Push(transport.Block{Channel: ch, Samples: samples[:k]})
		samples = samples[k:]
	}
}
