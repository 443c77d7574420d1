package io

import (
	"errors"

	"github.com/ezrec/eater/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))

	// Rom errors
	ErrRomRead  = errors.New(f("rom read"))
	ErrRomLimit = errors.New(f("rom too large"))
)
