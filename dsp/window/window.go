package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a cosine-sum window.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
	numTypes
)

// Metadata holds the textbook spectral figures of a window type.
type Metadata struct {
	Name            string
	ENBW            float64 // bins
	HighestSidelobe float64 // dB
	CoherentGain    float64
}

// shape is a window defined by its cosine-series terms a0 - a1 cos + a2 cos...
type shape struct {
	key   string
	terms []float64
	meta  Metadata
}

var shapes = [numTypes]shape{
	TypeRectangular: {"rectangular", []float64{1},
		Metadata{"Rectangular", 1.0, -13.3, 1.0}},
	TypeHann: {"hann", []float64{0.5, -0.5},
		Metadata{"Hann", 1.5, -31.5, 0.5}},
	TypeHamming: {"hamming", []float64{0.54, -0.46},
		Metadata{"Hamming", 1.36, -42.7, 0.54}},
	TypeBlackman: {"blackman", []float64{0.42, -0.5, 0.08},
		Metadata{"Blackman", 1.73, -58.1, 0.42}},
	TypeBlackmanHarris4Term: {"blackman-harris", []float64{0.35875, -0.48829, 0.14128, -0.01168},
		Metadata{"Blackman-Harris", 2.0, -92.0, 0.35875}},
	TypeFlatTop: {"flat-top", []float64{0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368},
		Metadata{"Flat-Top", 3.77, -93.0, 0.21557895}},
}

// Option configures Generate.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic (DFT-even) form used for FFT framing
// instead of the symmetric form.
func WithPeriodic() Option {
	return func(c *config) { c.periodic = true }
}

// Types returns every supported window type.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}

	return out
}

func (t Type) valid() bool { return t >= 0 && t < numTypes }

// String returns the configuration name, e.g. "blackman-harris".
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("window(%d)", int(t))
	}

	return shapes[t].key
}

// Parse resolves a configuration name. Case, surrounding space and "-", "_"
// or " " separators are ignored.
func Parse(name string) (Type, error) {
	key := normalizeName(name)
	for t := range numTypes {
		if normalizeName(shapes[t].key) == key {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errUnknownType, name)
}

var nameReplacer = strings.NewReplacer("-", "", "_", "", " ", "")

func normalizeName(s string) string {
	return nameReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Info returns the static metadata of t, or the zero value for an unknown
// type.
func Info(t Type) Metadata {
	if !t.valid() {
		return Metadata{}
	}

	return shapes[t].meta
}

// Generate returns n coefficients of window t. Unknown types are
// rectangular. n <= 0 returns nil.
func Generate(t Type, n int, opts ...Option) []float64 {
	if n <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	terms := shapes[TypeRectangular].terms
	if t.valid() {
		terms = shapes[t].terms
	}

	den := float64(n - 1)
	if cfg.periodic || n == 1 {
		den = float64(n)
	}

	out := make([]float64, n)
	for i := range out {
		phase := 2 * math.Pi * float64(i) / den

		v := 0.0
		for k, a := range terms {
			v += a * math.Cos(float64(k)*phase)
		}

		out[i] = v
	}

	return out
}

// Apply multiplies samples by coeffs in place.
func Apply(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return fmt.Errorf("%w: %d samples, %d coefficients", errMismatchedLength, len(samples), len(coeffs))
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain is the mean coefficient: the amplitude a windowed sinusoid
// keeps at its own bin.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW of coeffs in bins.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	var sum, sq float64
	for _, c := range coeffs {
		sum += c
		sq += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sq / (sum * sum), nil
}
