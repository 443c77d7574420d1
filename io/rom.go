package io

import (
	"errors"
	"io"
	"os"
)

// ROM_LIMIT is the largest image the Rom will read. Anything longer is
// certainly not a program image.
const ROM_LIMIT = 4096

// Rom holds a program image read from a file or stream.
type Rom struct {
	Name string // Source name, for messages.
	Data []byte // Image bytes.
}

// Read replaces the Rom data with the contents of in.
func (rc *Rom) Read(in io.Reader) (err error) {
	data, err := io.ReadAll(io.LimitReader(in, ROM_LIMIT+1))
	if err != nil {
		err = errors.Join(ErrRomRead, err)
		return
	}

	if len(data) > ROM_LIMIT {
		err = ErrRomLimit
		return
	}

	rc.Data = data
	return
}

// Open reads the Rom from a named file. The name "-" reads stdin.
func (rc *Rom) Open(name string) (err error) {
	in := io.Reader(os.Stdin)
	if name != "-" {
		var inf *os.File
		inf, err = os.Open(name)
		if err != nil {
			err = errors.Join(ErrRomRead, err)
			return
		}
		defer inf.Close()
		in = inf
	}

	err = rc.Read(in)
	if err != nil {
		return
	}

	rc.Name = name
	return
}
