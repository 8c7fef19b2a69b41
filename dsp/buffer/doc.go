// Package buffer provides the fixed-length sliding sample window that feeds
// the spectrum analyzer.
package buffer
