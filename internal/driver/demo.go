package driver

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-linear/pkg/settings"
)

// KindAll selects every demo in RunDemo.
const KindAll = "all"

func add(v int) Command { return Command{Op: OpAdd, Value: v} }

var (
	remove  = Command{Op: OpRemove}
	peek    = Command{Op: OpPeek}
	display = Command{Op: OpDisplay}
	isEmpty = Command{Op: OpIsEmpty}
	isFull  = Command{Op: OpIsFull}
)

// Scripts are the scripted walkthroughs for each kind.
var Scripts = map[string][]Command{
	KindStack: {
		add(10), add(20), add(30),
		display,
		peek,
		remove,
		display,
		isEmpty,
		isFull,
	},
	KindQueue: {
		add(10), add(20), add(30),
		display,
		remove,
		display,
		peek,
		isEmpty,
	},
	// With five slots and one reserved, 60 is rejected until two items leave.
	KindCircular: {
		add(10), add(20), add(30),
		display,
		remove,
		display,
		add(40), add(50),
		display,
		add(60),
		remove,
		remove,
		display,
		add(60),
		display,
	},
}

// RunDemo runs the script for kind against a fresh structure and writes the
// transcript to out. KindAll runs every script.
func RunDemo(ctx context.Context, kind string, conf settings.Config, out io.Writer, log *zap.Logger) error {
	if kind == KindAll {
		return RunAll(ctx, conf, out, log)
	}

	script, ok := Scripts[kind]
	if !ok {
		return errors.Errorf("no demo for %q", kind)
	}
	t, err := NewTarget(kind, conf)
	if err != nil {
		return err
	}
	return NewSession(t, out, log).Run(ctx, script)
}

// RunAll runs every script concurrently, each on its own structure, and
// writes the transcripts to out in Kinds order.
func RunAll(ctx context.Context, conf settings.Config, out io.Writer, log *zap.Logger) error {
	bufs := make([]bytes.Buffer, len(Kinds))

	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range Kinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return RunDemo(ctx, kind, conf, &bufs[i], log)
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "run demos")
	}

	for i, kind := range Kinds {
		if i > 0 {
			if _, err := io.WriteString(out, "\n"); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		if _, err := fmt.Fprintf(out, "== %s ==\n", kind); err != nil {
			return errors.Wrap(err, "write output")
		}
		if _, err := bufs[i].WriteTo(out); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}
