package eq

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrUnknownParam is returned for parameter IDs or names that do not exist.
var ErrUnknownParam = errors.New("eq: unknown parameter")

// ParamID identifies one chain parameter.
type ParamID int

const (
	LowCutFreq ParamID = iota
	LowCutSlope
	LowCutBypass
	PeakFreq
	PeakGain
	PeakQ
	PeakBypass
	HighCutFreq
	HighCutSlope
	HighCutBypass
	AnalyzerEnable
	numParams
)

type paramKind int

const (
	kindFloat paramKind = iota
	kindSlope
	kindBool
)

type paramSpec struct {
	name     string
	kind     paramKind
	min, max float64
}

var paramSpecs = [numParams]paramSpec{
	LowCutFreq:     {"LowCut Freq", kindFloat, MinFrequency, MaxFrequency},
	LowCutSlope:    {"LowCut Slope", kindSlope, 12, 48},
	LowCutBypass:   {"LowCut Bypassed", kindBool, 0, 1},
	PeakFreq:       {"Peak Freq", kindFloat, MinFrequency, MaxFrequency},
	PeakGain:       {"Peak Gain", kindFloat, MinGainDB, MaxGainDB},
	PeakQ:          {"Peak Quality", kindFloat, MinQ, MaxQ},
	PeakBypass:     {"Peak Bypassed", kindBool, 0, 1},
	HighCutFreq:    {"HighCut Freq", kindFloat, MinFrequency, MaxFrequency},
	HighCutSlope:   {"HighCut Slope", kindSlope, 12, 48},
	HighCutBypass:  {"HighCut Bypassed", kindBool, 0, 1},
	AnalyzerEnable: {"Analyzer Enabled", kindBool, 0, 1},
}

// Valid reports whether id names a parameter.
func (id ParamID) Valid() bool {
	return id >= 0 && id < numParams
}

func (id ParamID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ParamID(%d)", int(id))
	}

	return paramSpecs[id].name
}

// ParamIDs returns every parameter in declaration order.
func ParamIDs() []ParamID {
	ids := make([]ParamID, numParams)
	for i := range ids {
		ids[i] = ParamID(i)
	}

	return ids
}

// Lookup finds a parameter by display name. Case, spaces, underscores and
// dashes are ignored, so "peak_gain" matches "Peak Gain".
func Lookup(name string) (ParamID, error) {
	key := normalizeParamName(name)
	for id := range numParams {
		if normalizeParamName(paramSpecs[id].name) == key {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
}

func normalizeParamName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}

		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// Listener receives parameter changes and periodic ticks.
type Listener interface {
	OnParameterChanged(id ParamID, value float64)
	// OnTick performs one consumer cycle and reports whether anything
	// visible changed.
	OnTick() bool
}

// Parameters is a thread-safe parameter store. Values are held as atomic
// float64 bits; Set clamps to the parameter range and notifies listeners.
type Parameters struct {
	values [numParams]atomic.Uint64

	mu        sync.RWMutex
	listeners []Listener
}

// NewParameters returns a store holding s.
func NewParameters(s Settings) *Parameters {
	p := &Parameters{}
	p.store(s)

	return p
}

func (p *Parameters) store(s Settings) {
	set := func(id ParamID, v float64) {
		p.values[id].Store(math.Float64bits(sanitize(id, v)))
	}

	set(LowCutFreq, s.LowCut.Freq)
	set(LowCutSlope, float64(s.LowCut.Slope))
	set(LowCutBypass, boolValue(s.LowCut.Bypassed))
	set(PeakFreq, s.Peak.Freq)
	set(PeakGain, s.Peak.GainDB)
	set(PeakQ, s.Peak.Q)
	set(PeakBypass, boolValue(s.Peak.Bypassed))
	set(HighCutFreq, s.HighCut.Freq)
	set(HighCutSlope, float64(s.HighCut.Slope))
	set(HighCutBypass, boolValue(s.HighCut.Bypassed))
	set(AnalyzerEnable, boolValue(s.AnalyzerEnabled))
}

// AddListener registers l for change notifications.
func (p *Parameters) AddListener(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.listeners = append(p.listeners, l)
}

// RemoveListener unregisters l.
func (p *Parameters) RemoveListener(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, x := range p.listeners {
		if x == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

// Get returns the current value of id.
func (p *Parameters) Get(id ParamID) float64 {
	if !id.Valid() {
		return 0
	}

	return math.Float64frombits(p.values[id].Load())
}

// Set stores v for id after clamping it into range (slopes snap to the
// nearest supported value, switches to 0 or 1), notifies every listener and
// returns the stored value. NaN is rejected.
func (p *Parameters) Set(id ParamID, v float64) (float64, error) {
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownParam, int(id))
	}

	if math.IsNaN(v) {
		return 0, fmt.Errorf("eq: %s: value is NaN", id)
	}

	v = sanitize(id, v)
	p.values[id].Store(math.Float64bits(v))

	p.mu.RLock()
	listeners := append([]Listener(nil), p.listeners...)
	p.mu.RUnlock()

	for _, l := range listeners {
		l.OnParameterChanged(id, v)
	}

	return v, nil
}

// Replace stores every value of s and notifies listeners once per parameter.
func (p *Parameters) Replace(s Settings) {
	p.store(s)

	p.mu.RLock()
	listeners := append([]Listener(nil), p.listeners...)
	p.mu.RUnlock()

	for _, l := range listeners {
		for id := range numParams {
			l.OnParameterChanged(id, p.Get(id))
		}
	}
}

// Settings returns a snapshot of all values.
func (p *Parameters) Settings() Settings {
	return Settings{
		LowCut: StageDescriptor{
			Kind:     StageHighPass,
			Freq:     p.Get(LowCutFreq),
			Slope:    Slope(p.Get(LowCutSlope)),
			Bypassed: p.Get(LowCutBypass) != 0,
		},
		Peak: StageDescriptor{
			Kind:     StagePeak,
			Freq:     p.Get(PeakFreq),
			GainDB:   p.Get(PeakGain),
			Q:        p.Get(PeakQ),
			Bypassed: p.Get(PeakBypass) != 0,
		},
		HighCut: StageDescriptor{
			Kind:     StageLowPass,
			Freq:     p.Get(HighCutFreq),
			Slope:    Slope(p.Get(HighCutSlope)),
			Bypassed: p.Get(HighCutBypass) != 0,
		},
		AnalyzerEnabled: p.Get(AnalyzerEnable) != 0,
	}
}

func sanitize(id ParamID, v float64) float64 {
	spec := paramSpecs[id]

	switch spec.kind {
	case kindSlope:
		return float64(SlopeFromValue(v))
	case kindBool:
		return boolValue(v >= 0.5)
	default:
		return min(max(v, spec.min), spec.max)
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
