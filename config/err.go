package config

import (
	"errors"

	"github.com/ezrec/eater/translate"
)

var f = translate.From

var (
	ErrConfigType  = errors.New(f("wrong type"))
	ErrConfigRange = errors.New(f("out of range"))
)

// ErrConfig indicates the setting, or file, that failed to load.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
