// Package flags provides support for nodelist CLI args
package flags

import (
	"errors"
	"flag"
	"io"
)

// ErrExcessArgs is returned when more than one script path is provided
var ErrExcessArgs = errors.New("excess arguments provided")

// Flags holds CLI arguments for nodelist.
type Flags struct {
	ConfigPath string
	ScriptPath string // empty when commands come from stdin

	Verbose bool // force debug logging
	Trace   bool // log every mutation, regardless of config
}

func defineFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to config (uses ~/.nodelist/config.toml when unspecified)")
	fs.BoolVar(&f.Verbose, "v", false, "enable debug logging")
	fs.BoolVar(&f.Trace, "trace", false, "log every change to the list")
}

// ParseArgs defines and parses the flags from the command line. args[0] is the
// program name.
func ParseArgs(args []string) (*Flags, error) {
	f := new(Flags)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	defineFlags(fs, f)

	err := fs.Parse(args[1:])
	if err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 0:
	case 1:
		f.ScriptPath = fs.Arg(0)
	default:
		return nil, ErrExcessArgs
	}
	return f, nil
}
