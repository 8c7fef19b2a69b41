package eq

import (
	"errors"
	"fmt"
)

// MaxCutSections is the number of second-order sections reserved for each
// cut stage.
const MaxCutSections = 4

// Parameter ranges accepted by Settings.Validate and Parameters.Set.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
	MinGainDB    = -24.0
	MaxGainDB    = 24.0
	MinQ         = 0.1
	MaxQ         = 10.0
)

// Sentinel errors returned (wrapped) by Settings.Validate.
var (
	// ErrFrequencyRange reports a stage frequency outside MinFrequency..MaxFrequency.
	ErrFrequencyRange = errors.New("eq: frequency out of range")
	// ErrGainRange reports a peak gain outside MinGainDB..MaxGainDB.
	ErrGainRange = errors.New("eq: gain out of range")
	// ErrQRange reports a peak Q outside MinQ..MaxQ.
	ErrQRange = errors.New("eq: Q out of range")
	// ErrInvalidSlope reports a cut slope other than 12, 24, 36 or 48 dB/Oct.
	ErrInvalidSlope = errors.New("eq: invalid slope")
	// ErrStageKind reports a stage whose Kind does not match its position.
	ErrStageKind = errors.New("eq: stage kind does not match position")
)

// Slope is a cut-stage steepness in dB per octave.
type Slope int

// Supported slopes. Each 12 dB/Oct step adds one second-order section.
const (
	Slope12 Slope = 12 // one section
	Slope24 Slope = 24 // two sections
	Slope36 Slope = 36 // three sections
	Slope48 Slope = 48 // four sections
)

// Valid reports whether s is one of the four supported slopes.
func (s Slope) Valid() bool {
	switch s {
	case Slope12, Slope24, Slope36, Slope48:
		return true
	default:
		return false
	}
}

// Sections returns the number of second-order sections (1-4) the slope needs.
func (s Slope) Sections() int {
	return int(s) / 12
}

// Order returns the Butterworth filter order for the slope.
func (s Slope) Order() int {
	return 2 * s.Sections()
}

func (s Slope) String() string {
	return fmt.Sprintf("%d dB/Oct", int(s))
}

// SlopeFromValue snaps v to the nearest supported slope.
func SlopeFromValue(v float64) Slope {
	n := int(v/12 + 0.5)
	n = min(max(n, 1), MaxCutSections)

	return Slope(12 * n)
}

// StageKind is the filter type of a stage.
type StageKind int

const (
	// StagePeak is a peaking (bell) filter, the Peak stage.
	StagePeak StageKind = iota
	// StageHighPass is a Butterworth high-pass cascade, the LowCut stage.
	StageHighPass
	// StageLowPass is a Butterworth low-pass cascade, the HighCut stage.
	StageLowPass
)

func (k StageKind) String() string {
	switch k {
	case StagePeak:
		return "peak"
	case StageHighPass:
		return "high-pass"
	case StageLowPass:
		return "low-pass"
	default:
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
}

// StageDescriptor holds the user-facing parameters of one stage. GainDB and
// Q apply to peak stages only; Slope applies to cut stages only.
type StageDescriptor struct {
	// Kind reports the filter type of the stage. It is fixed by the stage's
	// position in Settings: Design always builds LowCut as a high-pass,
	// Peak as a peaking filter and HighCut as a low-pass, and Validate
	// rejects a Kind that disagrees.
	Kind     StageKind
	Freq     float64
	GainDB   float64
	Q        float64
	Slope    Slope
	Bypassed bool
}

// Settings is a read snapshot of every chain parameter.
type Settings struct {
	LowCut          StageDescriptor
	Peak            StageDescriptor
	HighCut         StageDescriptor
	AnalyzerEnabled bool
}

// DefaultSettings returns the power-on state: cut stages at the edges of the
// audible range with the gentlest slope and a flat peak at 750 Hz.
func DefaultSettings() Settings {
	return Settings{
		LowCut:          StageDescriptor{Kind: StageHighPass, Freq: 20, Slope: Slope12},
		Peak:            StageDescriptor{Kind: StagePeak, Freq: 750, GainDB: 0, Q: 1},
		HighCut:         StageDescriptor{Kind: StageLowPass, Freq: 20000, Slope: Slope12},
		AnalyzerEnabled: true,
	}
}

// Validate checks every value against the accepted parameter ranges. It is
// meant for parameter sources; the chain itself trusts its input.
func (s Settings) Validate() error {
	var errs []error

	check := func(name string, ok bool, sentinel error, v any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s = %v", sentinel, name, v))
		}
	}

	inRange := func(v, lo, hi float64) bool { return v >= lo && v <= hi }

	check("low cut kind", s.LowCut.Kind == StageHighPass, ErrStageKind, s.LowCut.Kind)
	check("peak kind", s.Peak.Kind == StagePeak, ErrStageKind, s.Peak.Kind)
	check("high cut kind", s.HighCut.Kind == StageLowPass, ErrStageKind, s.HighCut.Kind)
	check("low cut frequency", inRange(s.LowCut.Freq, MinFrequency, MaxFrequency), ErrFrequencyRange, s.LowCut.Freq)
	check("low cut slope", s.LowCut.Slope.Valid(), ErrInvalidSlope, int(s.LowCut.Slope))
	check("peak frequency", inRange(s.Peak.Freq, MinFrequency, MaxFrequency), ErrFrequencyRange, s.Peak.Freq)
	check("peak gain", inRange(s.Peak.GainDB, MinGainDB, MaxGainDB), ErrGainRange, s.Peak.GainDB)
	check("peak Q", inRange(s.Peak.Q, MinQ, MaxQ), ErrQRange, s.Peak.Q)
	check("high cut frequency", inRange(s.HighCut.Freq, MinFrequency, MaxFrequency), ErrFrequencyRange, s.HighCut.Freq)
	check("high cut slope", s.HighCut.Slope.Valid(), ErrInvalidSlope, int(s.HighCut.Slope))

	return errors.Join(errs...)
}
