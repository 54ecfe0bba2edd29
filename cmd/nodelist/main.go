package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/nodelist/config"
	"hop.computer/nodelist/flags"
	"hop.computer/nodelist/script"
)

func main() {
	fd := os.Stdin.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if err := run(os.Args, os.Stdin, interactive, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, interactive bool, stdout io.Writer) error {
	f, err := flags.ParseArgs(args)
	if err != nil {
		return err
	}

	c, err := config.LoadOrDefault(f.ConfigPath)
	if err != nil {
		return err
	}
	level, err := c.Level()
	if err != nil {
		return err
	}
	if f.Verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	s := script.NewSession(stdout, logrus.WithField("component", "script"))
	s.KeepGoing = c.KeepGoing
	s.Echo = c.Echo
	s.Seed(c.Seed)

	if f.Trace || c.Trace.Enabled {
		trace := logrus.WithField("component", "trace")
		s.Subscribe(func(ev *script.Event) {
			trace.WithField("len", ev.Len).Info(ev.Command)
		})
	}

	if f.ScriptPath != "" {
		fd, err := os.Open(f.ScriptPath)
		if err != nil {
			return errors.Wrap(err, "unable to open script")
		}
		defer fd.Close()
		return s.Run(fd)
	}
	if interactive {
		return s.Interact(stdin, c.Prompt)
	}
	return s.Run(stdin)
}
