//go:build headless

package viewer

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/eq"
)

// ErrNoDisplay is returned by Run in headless builds.
var ErrNoDisplay = errors.New("viewer: built without a display (headless)")

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	TickHz float64
}

func Run(context.Context, *eq.ResponseCurve, *eq.Parameters, *Frame, Options, *zap.Logger) error {
	return ErrNoDisplay
}
