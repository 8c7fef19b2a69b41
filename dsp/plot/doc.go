// Package plot converts magnitude data into screen-space polylines on a
// logarithmic frequency axis (20 Hz to 20 kHz) and a linear decibel axis.
//
// Screen coordinates grow rightwards and downwards: higher levels map to
// smaller y. Every path holds one point per pixel column of its bounds and
// is built from straight segments only.
package plot
