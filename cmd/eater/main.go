// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ezrec/eater/config"
	"github.com/ezrec/eater/emulator"
	"github.com/ezrec/eater/translate"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(os.Args[0])))
}

func main() {
	var conf string
	var interp bool
	var budget int
	var hex bool
	var verbose bool

	flag.StringVar(&conf, "c", "", ".star run configuration")
	flag.BoolVar(&interp, "i", false, "Run on the one-shot interpreter, not the cycle simulator")
	flag.IntVar(&budget, "n", 0, "Tick budget, 0 is unlimited")
	flag.BoolVar(&hex, "x", false, "Print output in hexadecimal")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		translate.Fprintf(flag.CommandLine.Output(), "usage: %v [options] [image.bin]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() > 1 {
		log.Fatalf("%v", translate.From("unknown arguments: %v", flag.Args()[1:]))
	}

	cfg := &config.Config{}
	if len(conf) != 0 {
		var err error
		cfg, err = config.Load(conf, nil, emulator.NewEmulator(emulator.ENGINE_SIM).Defines())
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	// Flags override the configuration.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "i":
			cfg.Engine = emulator.ENGINE_SIM
			if interp {
				cfg.Engine = emulator.ENGINE_INTERP
			}
		case "n":
			cfg.Budget = budget
		case "x":
			cfg.Hex = hex
		case "v":
			cfg.Verbose = verbose
		}
	})

	emu := cfg.NewEmulator()
	emu.Tape.Output = os.Stdout

	switch {
	case flag.NArg() == 1:
		err := emu.Rom.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}
	case cfg.Image == nil:
		flag.Usage()
		os.Exit(2)
	}

	err := emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", emu.Rom.Name, err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatalf("%v: %v", emu.Rom.Name, err)
	}

	if emu.Verbose {
		log.Printf("%v", translate.From("%v: %d ticks", emu.Kind, emu.Ticks()))
	}
}
