//go:build headless

package audio

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrNoDevice is returned by NewOto in headless builds.
var ErrNoDevice = errors.New("audio: built without audio output (headless)")

// Oto is unavailable in headless builds.
type Oto struct{}

func NewOto(*Pump, int, *zap.Logger) (*Oto, error) { return nil, ErrNoDevice }

func (*Oto) Run(context.Context) error { return ErrNoDevice }
