// Package testutil holds deterministic signal generators and assertions
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns n samples of amp·sin(2π·freq·i/fs), starting at
// phase zero.
func DeterministicSine(freq, fs, amp float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freq / fs

	for i := range out {
		out[i] = amp * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise returns n uniform samples in [-amp, amp) from a seeded
// source, so the same seed always yields the same signal.
func DeterministicNoise(seed int64, amp float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		out[i] = amp * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns n samples with a single 1 at pos. pos outside [0, n)
// yields silence.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}

	return out
}

// DC returns n samples of value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ones returns n samples of 1.
func Ones(n int) []float64 { return DC(1, n) }

// Chunks splits x into consecutive sub-slices of at most size samples. The
// chunks alias x, so filtering a chunk in place filters x.
func Chunks(x []float64, size int) [][]float64 {
	if size <= 0 {
		return nil
	}

	out := make([][]float64, 0, (len(x)+size-1)/size)
	for len(x) > 0 {
		k := min(size, len(x))
		out = append(out, x[:k:k])
		x = x[k:]
	}

	return out
}

// MaxAbs returns the largest absolute sample value of x, or 0 for an empty
// slice.
func MaxAbs(x []float64) float64 {
	m := 0.0
	for _, v := range x {
		m = max(m, math.Abs(v))
	}

	return m
}
