package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-linear/internal/driver"
	"github.com/huynhanx03/go-linear/pkg/logger"
	"github.com/huynhanx03/go-linear/pkg/settings"
)

type app struct {
	conf *settings.Config
	log  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "linear",
		Short:        "Bounded stack, linear queue and circular queue demos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	settings.RegisterFlags(root.PersistentFlags())

	root.AddCommand(a.demoCmd(), a.replCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, err := flags.GetString("conf")
	if err != nil {
		return errors.Wrap(err, "read --conf")
	}

	conf, err := settings.Load(path, flags)
	if err != nil {
		return err
	}
	log, err := logger.New(conf.Logger)
	if err != nil {
		return err
	}

	a.conf, a.log = conf, log
	a.log.Debug("config loaded",
		zap.String("path", path),
		zap.Int("stack_capacity", conf.Stack.Capacity),
		zap.Int("queue_capacity", conf.Queue.Capacity),
		zap.Int("circular_capacity", conf.Circular.Capacity),
		zap.Bool("circular_reserve_slot", conf.Circular.ReserveSlot),
	)
	return nil
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "demo [stack|queue|circular|all]",
		Short:     "Run the scripted walkthrough for a structure",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: append(append([]string{}, driver.Kinds...), driver.KindAll),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := driver.KindAll
			if len(args) == 1 {
				kind = args[0]
			}
			return driver.RunDemo(cmd.Context(), kind, *a.conf, cmd.OutOrStdout(), a.log)
		},
	}
}

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "repl [stack|queue|circular]",
		Short:     "Operate a structure from an interactive menu",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: driver.Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := driver.NewTarget(args[0], *a.conf)
			if err != nil {
				return err
			}
			s := driver.NewSession(t, cmd.OutOrStdout(), a.log)
			return s.Repl(cmd.Context(), cmd.InOrStdin())
		},
	}
}
