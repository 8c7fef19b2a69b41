// Package design computes biquad coefficients for the EQ stages: the RBJ
// cookbook peaking filter and Butterworth low and high pass cascades.
//
// Out-of-range input (a frequency outside (0, Nyquist), a non-positive or
// non-finite sample rate) yields zero coefficients instead of an error.
package design
