// Package script runs line-oriented commands against a list of strings.
//
// Each line holds one command followed by its arguments, separated by
// whitespace. A '#' starts a comment that runs to the end of the line. Blank
// lines are ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/nodelist/pkg/list"
	"hop.computer/nodelist/pkg/waiter"
)

// Absent is printed when a query finds no element.
const Absent = "(absent)"

// Errors returned by Exec. They are wrapped with the command name.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrBadArgument    = errors.New("bad argument")
)

// LineError records the line of a script that failed.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Event describes a change that was applied to the list.
type Event struct {
	Command string // the line as executed, without comments
	Len     int    // length of the list afterwards
}

// Session owns a list and applies commands to it. It is not safe for
// concurrent use.
type Session struct {
	// KeepGoing makes Run continue past failing lines.
	KeepGoing bool

	// Echo prints each command before its output.
	Echo bool

	l      *list.List[string]
	out    io.Writer
	log    *logrus.Entry
	events waiter.Queue[Event]
}

// NewSession returns a Session with an empty list that writes command output to
// out.
func NewSession(out io.Writer, log *logrus.Entry) *Session {
	if log == nil {
		log = logrus.WithField("component", "script")
	}
	return &Session{
		l:   list.New[string](),
		out: out,
		log: log,
	}
}

// List returns the list the session operates on.
func (s *Session) List() *list.List[string] {
	return s.l
}

// Seed appends values to the back of the list. Subscribers are not notified.
func (s *Session) Seed(values []string) {
	for _, v := range values {
		s.l.PushBack(v)
	}
	s.log.WithField("len", len(values)).Debug("seeded list")
}

// Subscribe registers f to be called after every command that changes the
// list. The returned entry can be passed to Unsubscribe.
func (s *Session) Subscribe(f func(*Event)) *waiter.Entry[Event] {
	e := waiter.NewFunctionEntry(f)
	s.events.EventRegister(e)
	return e
}

// Unsubscribe removes an entry returned by Subscribe.
func (s *Session) Unsubscribe(e *waiter.Entry[Event]) bool {
	return s.events.EventUnregister(e)
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// Exec runs a single line. Lines that are empty after removing comments do
// nothing.
func (s *Session) Exec(line string) error {
	line = stripComment(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q", name)
	}
	if len(args) != len(cmd.args) {
		return errors.Wrapf(ErrArgCount, "%s: want %d, got %d", name, len(cmd.args), len(args))
	}
	if s.Echo {
		fmt.Fprintf(s.out, "+ %s\n", line)
	}
	s.log.WithField("command", name).Debugf("exec %q", line)
	if err := cmd.run(s, args); err != nil {
		return errors.WithMessage(err, name)
	}
	if cmd.mutates {
		s.events.Notify(&Event{
			Command: line,
			Len:     s.l.Len(),
		})
	}
	return nil
}

// Run executes every line read from r. It stops at the first failing line
// unless KeepGoing is set, in which case all failures are returned together.
func (s *Session) Run(r io.Reader) error {
	var result *multierror.Error
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		err := s.Exec(sc.Text())
		if err == nil {
			continue
		}
		lerr := &LineError{Line: n, Err: err}
		if !s.KeepGoing {
			return lerr
		}
		s.log.WithField("line", n).Warn(err)
		result = multierror.Append(result, lerr)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "unable to read script")
	}
	return result.ErrorOrNil()
}

// Interact runs lines from r one at a time, writing prompt before each one.
// Errors are printed and do not stop the loop. It returns when r is exhausted.
func (s *Session) Interact(r io.Reader, prompt string) error {
	sc := bufio.NewScanner(r)
	fmt.Fprint(s.out, prompt)
	for sc.Scan() {
		if err := s.Exec(sc.Text()); err != nil {
			fmt.Fprintf(s.out, "error: %s\n", err)
		}
		fmt.Fprint(s.out, prompt)
	}
	fmt.Fprintln(s.out)
	return sc.Err()
}

func (s *Session) printValue(v string, ok bool) {
	if !ok {
		v = Absent
	}
	fmt.Fprintln(s.out, v)
}
