// SPDX-License-Identifier: MIT
// File: commands.go
// Role: Cobra command tree and interactive session lifecycle.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordgraph/internal/dispatch"
	"github.com/katalvlaran/wordgraph/internal/metrics"
)

func newRootCmd() *cobra.Command {
	f := &globalFlags{}
	var show bool

	root := &cobra.Command{
		Use:   "wordgraph FILE",
		Short: "Query the word-adjacency graph of a text file",
		Long: `wordgraph reads a text file, links every word to the words that follow it,
and answers questions about the resulting directed graph.

Without a subcommand it prints the graph and starts an interactive session.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, args[0])
			if err != nil {
				return err
			}
			if show {
				if err := a.dispatch.Show(cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			return runSession(cmd.Context(), cmd, a)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")
	pf.Int64Var(&f.seed, "seed", 0, "random seed for walk and generate (0 = clock)")
	pf.BoolVar(&f.metrics, "metrics", false, "serve Prometheus metrics during the interactive session")
	pf.StringVar(&f.metricsAddr, "metrics-addr", ":9464", "listen address of the metrics endpoint")
	root.Flags().BoolVar(&show, "show", true, "print the graph before the session starts")

	root.AddCommand(
		newShowCmd(f),
		newBridgeCmd(f),
		newPathCmd(f),
		newWalkCmd(f),
		newGenerateCmd(f),
	)
	return root
}

func newShowCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print the adjacency list of every word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, args[0])
			if err != nil {
				return err
			}
			return a.dispatch.Show(cmd.OutOrStdout())
		},
	}
}

func newBridgeCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge FILE WORD1 WORD2",
		Short: "List the bridge words from WORD1 to WORD2",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.dispatch.Bridge(args[1], args[2]))
			return nil
		},
	}
}

func newPathCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path FILE WORD1 WORD2",
		Short: "Print a shortest path from WORD1 to WORD2",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.dispatch.Path(args[1], args[2]))
			return nil
		},
	}
}

func newWalkCmd(f *globalFlags) *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "Perform random walks over the graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return fmt.Errorf("--times must be positive, got %d", times)
			}
			a, err := newApp(cmd, f, args[0])
			if err != nil {
				return err
			}
			for i := 0; i < times; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), a.dispatch.Walk())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&times, "times", "n", 1, "number of walks")
	return cmd
}

func newGenerateCmd(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "generate FILE TEXT...",
		Short: "Insert bridge words into TEXT",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, f, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.dispatch.Generate(strings.Join(args[1:], " ")))
			return nil
		},
	}
}

// runSession runs the interactive loop and, when enabled, the metrics
// endpoint. The endpoint address is bound before the session reads any
// input. Ending the session stops the endpoint.
func runSession(ctx context.Context, cmd *cobra.Command, a *app) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if a.cfg.Metrics.Enabled {
		ln, err := metrics.Listen(a.cfg.Metrics.Addr)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return metrics.Serve(gctx, ln, a.metrics, a.log)
		})
	}
	g.Go(func() error {
		defer cancel()
		s := dispatch.NewSession(a.dispatch, cmd.InOrStdin(), cmd.OutOrStdout(), interactive(cmd))
		return s.Run(gctx)
	})
	return g.Wait()
}

// interactive reports whether the session input is a terminal.
func interactive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd())
}
