// Package biquad implements second-order IIR sections in Direct Form II
// Transposed and their closed-form magnitude response.
//
// A [Chain] is a fixed-length cascade. The EQ keeps every slot allocated and
// writes [Passthrough] into bypassed ones, so coefficient updates keep the
// filter state and never allocate.
package biquad
