// Package iostreams bundles the process I/O streams so commands write
// through injectable handles instead of os.Stdout/os.Stderr directly,
// which keeps command output assertable in tests.
package iostreams

import (
	"bytes"
	"io"
	"os"
)

// IOStreams holds the three standard streams.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// System returns streams bound to the real process streams.
func System() *IOStreams {
	return &IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

// Test returns streams backed by buffers for assertions.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{In: in, Out: out, ErrOut: errOut}, in, out, errOut
}
