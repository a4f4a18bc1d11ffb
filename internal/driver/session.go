package driver

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-linear/pkg/common/apperr"
	"github.com/huynhanx03/go-linear/pkg/datastructs/container"
)

// Op is a single driver operation. The numbering matches the menu.
type Op int

const (
	OpAdd Op = iota + 1
	OpRemove
	OpPeek
	OpDisplay
	OpIsEmpty
	OpIsFull
	OpExit
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpPeek:
		return "peek"
	case OpDisplay:
		return "display"
	case OpIsEmpty:
		return "is_empty"
	case OpIsFull:
		return "is_full"
	case OpExit:
		return "exit"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Command is an Op with its argument. Value is only read by OpAdd.
type Command struct {
	Op    Op
	Value int
}

// ErrExit is returned by Exec for OpExit.
var ErrExit = errors.New("exit")

// Session runs commands against one Target and reports the outcome of each
// to out. Full and empty conditions are reported, not returned.
type Session struct {
	target *Target
	out    io.Writer
	log    *zap.Logger
	werr   error
}

// NewSession creates a session. A nil logger discards logs.
func NewSession(t *Target, out io.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		target: t,
		out:    out,
		log:    log.With(zap.String("structure", t.Kind)),
	}
}

// Target returns the structure the session operates on.
func (s *Session) Target() *Target {
	return s.target
}

// Exec runs one command. It returns ErrExit for OpExit and an error if
// writing to out failed.
func (s *Session) Exec(cmd Command) error {
	s.log.Debug("exec", zap.Stringer("op", cmd.Op), zap.Int("value", cmd.Value))

	t := s.target
	switch cmd.Op {
	case OpAdd:
		if err := t.Add(cmd.Value); err != nil {
			ae := s.reject(errors.Wrapf(err, "%s %d", cmd.Op, cmd.Value))
			s.printf("%s! Cannot %s %d\n", ae.Message, strings.ToLower(t.words.addTitle), cmd.Value)
			break
		}
		s.printf(t.words.added+"\n", cmd.Value)

	case OpRemove:
		v, err := t.Remove()
		if err != nil {
			ae := s.reject(errors.Wrap(err, cmd.Op.String()))
			s.printf("%s! Cannot %s.\n", ae.Message, strings.ToLower(t.words.removeTitle))
			break
		}
		s.printf(t.words.removed+"\n", v)

	case OpPeek:
		v, err := t.Peek()
		if err != nil {
			ae := s.reject(errors.Wrap(err, cmd.Op.String()))
			s.printf("%s!\n", ae.Message)
			break
		}
		s.printf(t.words.peeked+"\n", v)

	case OpDisplay:
		s.display()

	case OpIsEmpty:
		s.printf("%s is %s.\n", t.Name, yesNo(t.IsEmpty(), "empty", "not empty"))

	case OpIsFull:
		s.printf("%s is %s.\n", t.Name, yesNo(t.IsFull(), "full", "not full"))

	case OpExit:
		return ErrExit

	default:
		s.printf("Invalid choice! Please try again.\n")
	}

	if s.werr != nil {
		return errors.Wrap(s.werr, "write output")
	}
	return nil
}

// Run executes cmds in order, stopping at the first OpExit, write error or
// when ctx is done.
func (s *Session) Run(ctx context.Context, cmds []Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Exec(cmd); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *Session) display() {
	t := s.target
	if t.IsEmpty() {
		s.printf("%s is empty.\n", t.Name)
		return
	}
	s.printf("%s elements: ", t.Name)
	if s.werr == nil {
		_, s.werr = container.Render[int](s.out, t)
	}
}

// reject logs a refused operation and maps it for display.
func (s *Session) reject(err error) *apperr.AppError {
	ae := classify(s.target.words.subject, err)
	s.logReject(ae)
	return ae
}

func (s *Session) logReject(ae *apperr.AppError) {
	s.log.Info("operation rejected",
		zap.Int("code", ae.Code),
		zap.Int("len", s.target.Len()),
		zap.Int("cap", s.target.Cap()),
		zap.Error(ae.Cause),
	)
}

// printf writes to out, remembering the first error.
func (s *Session) printf(format string, args ...any) {
	if s.werr != nil {
		return
	}
	_, s.werr = fmt.Fprintf(s.out, format, args...)
}

func yesNo(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
