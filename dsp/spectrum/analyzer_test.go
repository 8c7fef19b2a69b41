package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-eqscope/dsp/window"
	"github.com/cwbudde/algo-eqscope/internal/testutil"
)

const floorDB = -48.0

func newAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()

	a, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return a
}

func TestNew_Defaults(t *testing.T) {
	a := newAnalyzer(t)
	if a.Size() != 2048 || a.Bins() != 1024 {
		t.Fatalf("Size()=%d Bins()=%d, want 2048/1024", a.Size(), a.Bins())
	}
	if a.Window() != window.TypeBlackmanHarris4Term {
		t.Fatalf("Window() = %v, want Blackman-Harris", a.Window())
	}
	if got := a.BinWidth(); math.Abs(got-48000.0/2048) > 1e-12 {
		t.Fatalf("BinWidth() = %v", got)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"size not power of two", WithSize(1000), ErrInvalidSize},
		{"size too small", WithSize(8), ErrInvalidSize},
		{"zero sample rate", WithSampleRate(0), ErrInvalidSampleRate},
		{"smoothing one", WithSmoothing(1), ErrInvalidSmoothing},
		{"negative smoothing", WithSmoothing(-0.1), ErrInvalidSmoothing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestComputeFrame_SilenceIsFloor(t *testing.T) {
	a := newAnalyzer(t)
	a.Ingest(make([]float64, 512))

	frame := a.ComputeFrame(floorDB)
	if len(frame.DB) != 1024 {
		t.Fatalf("len(DB) = %d, want 1024", len(frame.DB))
	}
	for k, v := range frame.DB {
		if v != floorDB {
			t.Fatalf("DB[%d] = %v, want floor %v", k, v, floorDB)
		}
	}
}

func TestComputeFrame_SinePeakWithinOneBin(t *testing.T) {
	const fs = 48000.0
	for _, f := range []float64{100, 440, 1000, 3333, 12000} {
		a := newAnalyzer(t, WithSampleRate(fs))
		a.Ingest(testutil.DeterministicSine(f, fs, 0.5, 4096))

		frame := a.ComputeFrame(floorDB)
		peak := frame.PeakBin()
		if d := math.Abs(frame.Frequency(peak) - f); d > frame.BinWidth {
			t.Fatalf("f=%v: peak at bin %d (%.1f Hz), off by %.1f Hz", f, peak, frame.Frequency(peak), d)
		}
		testutil.RequireFinite(t, frame.DB)
	}
}

func TestComputeFrame_FullScaleSineReadsZeroDB(t *testing.T) {
	const fs = 48000.0

	a := newAnalyzer(t, WithSampleRate(fs))
	f := 64 * a.BinWidth()
	a.Ingest(testutil.DeterministicSine(f, fs, 1, a.Size()))

	frame := a.ComputeFrame(floorDB)
	if got := frame.DB[64]; math.Abs(got) > 0.1 {
		t.Fatalf("bin 64 = %.3f dB, want about 0 dB", got)
	}
}

func TestComputeFrame_MatchesReferenceFFT(t *testing.T) {
	a := newAnalyzer(t, WithSize(256))
	a.Ingest(testutil.DeterministicNoise(7, 0.8, 256))

	frame := a.ComputeFrame(-200)

	windowed := make([]float64, 256)
	for i, x := range a.samples.Samples() {
		windowed[i] = x * a.coeffs[i]
	}
	ref := fft.FFTReal(windowed)

	for k := range frame.DB {
		want := 20 * math.Log10(cmplx.Abs(ref[k])*a.norm)
		want = math.Max(want, -200)
		if math.Abs(frame.DB[k]-want) > 1e-6 {
			t.Fatalf("bin %d: got %.9f dB, reference %.9f dB", k, frame.DB[k], want)
		}
	}
}

func TestFrameReady(t *testing.T) {
	a := newAnalyzer(t)
	if a.FrameReady() {
		t.Fatal("FrameReady() before any input")
	}

	a.Ingest(nil)
	if a.FrameReady() {
		t.Fatal("FrameReady() after empty ingest")
	}

	a.Ingest([]float64{1, 2, 3})
	a.Ingest([]float64{4})
	if !a.FrameReady() {
		t.Fatal("FrameReady() = false after ingest")
	}

	a.ComputeFrame(floorDB)
	if a.FrameReady() {
		t.Fatal("FrameReady() still true after ComputeFrame")
	}
}

func TestIngest_SlidesWindow(t *testing.T) {
	a := newAnalyzer(t, WithSize(16))
	a.Ingest(testutil.Ones(16))
	a.Ingest(make([]float64, 4))

	s := a.samples.Samples()
	if s[11] != 1 || s[12] != 0 || s[15] != 0 {
		t.Fatalf("window after slide = %v", s)
	}
}

func TestProduce_QueuesAndDropsNewest(t *testing.T) {
	a := newAnalyzer(t, WithSize(64), WithFrameCapacity(2))
	a.Ingest(testutil.DC(0.25, 64))

	if !a.Produce(floorDB) || !a.Produce(floorDB) {
		t.Fatal("Produce failed below capacity")
	}
	if a.Produce(floorDB) {
		t.Fatal("Produce succeeded on a full ring")
	}
	if a.NumAvailableFrames() != 2 || a.DroppedFrames() != 1 {
		t.Fatalf("available=%d dropped=%d, want 2/1", a.NumAvailableFrames(), a.DroppedFrames())
	}

	for range 2 {
		f, ok := a.PopFrame()
		if !ok || f.Size != 64 || len(f.DB) != 32 {
			t.Fatalf("PopFrame() = %+v, %v", f, ok)
		}
	}
	if _, ok := a.PopFrame(); ok {
		t.Fatal("PopFrame() on empty ring")
	}
}

func TestSmoothing_BlendsWithPreviousFrame(t *testing.T) {
	const fs = 48000.0

	a := newAnalyzer(t, WithSmoothing(0.5), WithSampleRate(fs))
	a.Ingest(testutil.DeterministicSine(1000, fs, 1, a.Size()))
	first := a.ComputeFrame(floorDB)
	peak := first.PeakBin()

	a.Ingest(make([]float64, a.Size()))
	second := a.ComputeFrame(floorDB)

	want := 0.5*first.DB[peak] + 0.5*floorDB
	if math.Abs(second.DB[peak]-want) > 1e-9 {
		t.Fatalf("smoothed peak = %v, want %v", second.DB[peak], want)
	}
}

func TestReset(t *testing.T) {
	a := newAnalyzer(t, WithSize(32))
	a.Ingest(testutil.Ones(32))
	a.Produce(floorDB)
	a.Ingest(testutil.Ones(4))

	a.Reset()
	if a.FrameReady() || a.NumAvailableFrames() != 0 {
		t.Fatal("Reset left pending work")
	}
	for _, v := range a.ComputeFrame(floorDB).DB {
		if v != floorDB {
			t.Fatalf("frame after Reset not silent: %v", v)
		}
	}
}

func TestSetSampleRate(t *testing.T) {
	a := newAnalyzer(t)
	a.SetSampleRate(96000)
	a.SetSampleRate(-1)
	if a.SampleRate() != 96000 {
		t.Fatalf("SampleRate() = %v, want 96000", a.SampleRate())
	}
}

func TestFrame_PeakBinEmpty(t *testing.T) {
	if got := (Frame{}).PeakBin(); got != -1 {
		t.Fatalf("PeakBin() = %d, want -1", got)
	}
}

func TestFilled(t *testing.T) {
	a := newAnalyzer(t, WithSize(64))

	a.Ingest(make([]float64, 48))
	if a.Filled() {
		t.Fatal("Filled after 48 of 64 samples")
	}

	a.Ingest(make([]float64, 16))
	if !a.Filled() {
		t.Fatal("not Filled after 64 samples")
	}

	a.Reset()
	if a.Filled() {
		t.Fatal("Filled after Reset")
	}
}

func TestComputeFrame_WindowMismatchIsFloor(t *testing.T) {
	a := newAnalyzer(t, WithSize(64))
	a.Ingest(testutil.Ones(64))
	a.coeffs = a.coeffs[:32]

	for k, v := range a.ComputeFrame(floorDB).DB {
		if v != floorDB {
			t.Fatalf("DB[%d] = %v, want floor %v", k, v, floorDB)
		}
	}
}
