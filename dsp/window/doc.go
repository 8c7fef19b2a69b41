// Package window provides the cosine-sum windows the spectrum analyzer uses
// to taper frames before the FFT, with their coherent gain and noise
// bandwidth.
package window
