// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads emulator run configurations.
//
// A configuration is a Starlark file that assigns any of these globals:
//
//	engine = "sim"       # or "interp"; ENGINE_SIM and ENGINE_INTERP are predeclared
//	budget = 1000        # tick budget, 0 is unlimited
//	verbose = False
//	hex = False          # print output values in hexadecimal
//	image = [OP_LDI | 3, OP_OUT, OP_HLT] + [0] * 13
//
// The emulator defines (OP_LDA, MEMORY_SIZE, ...) are predeclared.
package config

import (
	"errors"
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/eater/cpu"
	"github.com/ezrec/eater/emulator"
)

// Config is an emulator run configuration.
type Config struct {
	Engine  emulator.EngineKind // Engine to run the program on.
	Budget  int                 // Tick budget. Zero is unlimited.
	Verbose bool                // Verbose logging.
	Hex     bool                // Hexadecimal output.
	Image   []byte              // Program image, if set by the configuration.
}

// predeclare converts the define table to Starlark values. Integer
// defines become Int, all others String.
func predeclare(defines iter.Seq2[string, string]) (dict starlark.StringDict) {
	dict = starlark.StringDict{}
	if defines == nil {
		return
	}

	for key, text := range defines {
		value, err := strconv.ParseInt(text, 0, 64)
		if err == nil {
			dict[key] = starlark.MakeInt64(value)
		} else {
			dict[key] = starlark.String(text)
		}
	}

	return
}

// Load executes the configuration in filename. If src is not nil, it is
// used as the file contents (string, []byte or io.Reader) as with
// starlark.ExecFile.
func Load(filename string, src any, defines iter.Seq2[string, string]) (cfg *Config, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclare(defines))
	if err != nil {
		err = &ErrConfig{Name: filename, Err: err}
		return
	}

	cfg = &Config{}

	err = cfg.set(globals)
	if err != nil {
		cfg = nil
		return
	}

	return
}

// set assigns the recognized globals.
func (cfg *Config) set(globals starlark.StringDict) (err error) {
	for name, value := range globals {
		switch name {
		case "engine":
			err = setEngine(&cfg.Engine, value)
		case "budget":
			err = setInt(&cfg.Budget, value)
		case "verbose":
			err = setBool(&cfg.Verbose, value)
		case "hex":
			err = setBool(&cfg.Hex, value)
		case "image":
			err = setImage(&cfg.Image, value)
		default:
			// Helpers and temporaries are allowed.
			continue
		}
		if err != nil {
			err = &ErrConfig{Name: name, Err: err}
			return
		}
	}

	return
}

func setEngine(kind *emulator.EngineKind, value starlark.Value) (err error) {
	name, ok := value.(starlark.String)
	if !ok {
		err = ErrConfigType
		return
	}

	*kind, err = emulator.ParseEngineKind(name.GoString())
	return
}

func setInt(out *int, value starlark.Value) (err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = ErrConfigType
		return
	}

	i64, ok := i.Int64()
	if !ok || i64 < 0 || i64 > int64(^uint32(0)>>1) {
		err = ErrConfigRange
		return
	}

	*out = int(i64)
	return
}

func setBool(out *bool, value starlark.Value) (err error) {
	b, ok := value.(starlark.Bool)
	if !ok {
		err = ErrConfigType
		return
	}

	*out = bool(b)
	return
}

func setImage(out *[]byte, value starlark.Value) (err error) {
	if b, ok := value.(starlark.Bytes); ok {
		*out = []byte(string(b))
	} else {
		list, ok := value.(starlark.Indexable)
		if !ok {
			err = ErrConfigType
			return
		}

		image := make([]byte, list.Len())
		for n := range list.Len() {
			var cell int
			err = setInt(&cell, list.Index(n))
			if err == nil && cell > 0xff {
				err = ErrConfigRange
			}
			if err != nil {
				err = errors.Join(err, errors.New(f("image[%d]", n)))
				return
			}
			image[n] = uint8(cell)
		}
		*out = image
	}

	if len(*out) != cpu.MEMORY_SIZE {
		err = cpu.ErrImageSize(len(*out))
		*out = nil
	}

	return
}

// NewEmulator creates an emulator set up by the configuration.
func (cfg *Config) NewEmulator() (emu *emulator.Emulator) {
	emu = emulator.NewEmulator(cfg.Engine)
	emu.Budget = cfg.Budget
	emu.Verbose = cfg.Verbose
	emu.Tape.Hex = cfg.Hex
	if cfg.Image != nil {
		emu.Rom.Name = "image"
		emu.Rom.Data = cfg.Image
	}

	return
}
