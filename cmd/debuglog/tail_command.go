package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"debuglog/internal/config"
	"debuglog/internal/logs"
)

const followWait = time.Second

func newTailCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var minimum severityFlag
	var pathFlag string

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print the last records of the log sink",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(pathFlag)
			if target != "" {
				if target, err = config.ExpandPath(target); err != nil {
					return fmt.Errorf("resolve log path: %w", err)
				}
			} else {
				target = cfg.Logging.Sink
			}
			if target == "" {
				return errors.New("no log sink configured (set logging.sink or pass --path)")
			}

			out := cmd.OutOrStdout()
			runCtx := cmd.Context()
			result, err := logs.Tail(runCtx, target, logs.TailOptions{Offset: -1, Limit: lines, Min: minimum.value})
			if err != nil {
				return err
			}
			printLines(out, result.Lines)
			if !follow {
				return nil
			}

			for {
				result, err = logs.Tail(runCtx, target, logs.TailOptions{
					Offset: result.Offset,
					Follow: true,
					Wait:   followWait,
					Min:    minimum.value,
				})
				if errors.Is(err, context.Canceled) {
					return nil
				}
				if err != nil {
					return err
				}
				printLines(out, result.Lines)
			}
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of trailing lines to print")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing records as they are appended")
	cmd.Flags().Var(&minimum, "min", "Hide records below this severity")
	cmd.Flags().StringVar(&pathFlag, "path", "", "Read this file instead of the configured sink")
	return cmd
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
