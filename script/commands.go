package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type command struct {
	args    []string // argument names, for help
	mutates bool
	run     func(s *Session, args []string) error
}

// commands is filled in init to avoid an initialization cycle through help.
var commands map[string]command

func init() {
	commands = map[string]command{
		"push-front": {args: []string{"VALUE"}, mutates: true, run: func(s *Session, args []string) error {
			s.l.PushFront(args[0])
			return nil
		}},
		"push-back": {args: []string{"VALUE"}, mutates: true, run: func(s *Session, args []string) error {
			s.l.PushBack(args[0])
			return nil
		}},
		"insert": {args: []string{"VALUE", "POS"}, mutates: true, run: func(s *Session, args []string) error {
			pos, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			s.l.InsertAt(args[0], pos)
			return nil
		}},
		"pop-front": {mutates: true, run: func(s *Session, args []string) error {
			s.printValue(s.l.PopFront())
			return nil
		}},
		"pop-back": {mutates: true, run: func(s *Session, args []string) error {
			s.printValue(s.l.PopBack())
			return nil
		}},
		"pop-at": {args: []string{"POS"}, mutates: true, run: func(s *Session, args []string) error {
			pos, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			s.printValue(s.l.PopAt(pos))
			return nil
		}},
		"remove": {args: []string{"VALUE"}, mutates: true, run: func(s *Session, args []string) error {
			removed := s.l.Remove(func(v string) bool {
				return v == args[0]
			})
			fmt.Fprintln(s.out, removed)
			return nil
		}},
		"clear": {mutates: true, run: func(s *Session, args []string) error {
			s.l.Clear()
			return nil
		}},
		"front": {run: func(s *Session, args []string) error {
			s.printValue(s.l.Front())
			return nil
		}},
		"back": {run: func(s *Session, args []string) error {
			s.printValue(s.l.Back())
			return nil
		}},
		"len": {run: func(s *Session, args []string) error {
			fmt.Fprintln(s.out, s.l.Len())
			return nil
		}},
		"print": {run: func(s *Session, args []string) error {
			fmt.Fprintln(s.out, s.l)
			return nil
		}},
		"help": {run: help},
	}
}

func help(s *Session, args []string) error {
	names := maps.Keys(commands)
	slices.Sort(names)
	for _, name := range names {
		usage := strings.Join(append([]string{name}, commands[name].args...), " ")
		fmt.Fprintln(s.out, usage)
	}
	return nil
}

func parsePosition(arg string) (int, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(ErrBadArgument, "position %q is not an integer", arg)
	}
	return pos, nil
}
