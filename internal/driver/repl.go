package driver

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-linear/pkg/common/apperr"
)

// Repl runs the numbered menu, reading whitespace-separated tokens from in
// until the user picks exit, input ends or ctx is done.
func (s *Session) Repl(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.menu()
		if s.werr != nil {
			return errors.Wrap(s.werr, "write output")
		}
		if !sc.Scan() {
			return sc.Err()
		}

		choice, err := strconv.Atoi(sc.Text())
		if err != nil {
			s.log.Debug("bad choice", zap.String("input", sc.Text()))
			choice = 0
		}

		cmd := Command{Op: Op(choice)}
		if cmd.Op == OpAdd {
			s.printf("Enter item to %s: ", strings.ToLower(s.target.words.addTitle))
			if !sc.Scan() {
				return sc.Err()
			}
			if cmd.Value, err = strconv.Atoi(sc.Text()); err != nil {
				ae := apperr.NewError(s.target.Name, apperr.CodeInvalidInput, apperr.MsgInvalidInput, err)
				s.logReject(ae)
				s.printf("%s %q! Please enter an integer.\n", ae.Message, sc.Text())
				continue
			}
		}

		if err := s.Exec(cmd); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

func (s *Session) menu() {
	w := s.target.words
	s.printf("\n%s Operations:\n", s.target.Name)
	s.printf("1. %s\n", w.addTitle)
	s.printf("2. %s\n", w.removeTitle)
	s.printf("3. Peek\n")
	s.printf("4. Display\n")
	s.printf("5. Check if Empty\n")
	s.printf("6. Check if Full\n")
	s.printf("7. Exit\n")
	s.printf("Enter your choice: ")
}
