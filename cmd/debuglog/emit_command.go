package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"debuglog/internal/config"
	"debuglog/internal/logging"
)

func newEmitCommand(ctx *commandContext) *cobra.Command {
	level := severityFlag{value: logging.LevelInfo}
	var minimum severityFlag
	var sinkPath string

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Write one log record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// Override on a copy so the configured sink is never opened.
			settings := *cfg
			if target := strings.TrimSpace(sinkPath); target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve sink path: %w", err)
				}
				settings.Logging.Sink = expanded
			}

			logger, err := logging.NewFromConfig(&settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := logger.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("close log sink: %w", closeErr)
				}
			}()

			if minimum.set {
				logger.SetLevel(minimum.value)
			}

			logger.Log(level.value, "%s", strings.Join(args, " "))
			return nil
		},
	}

	cmd.Flags().VarP(&level, "level", "l", "Severity of the record (trace, debug, info, warn, error)")
	cmd.Flags().Var(&minimum, "min", "Override the configured minimum severity")
	cmd.Flags().StringVar(&sinkPath, "sink", "", "Append to this file instead of the configured destination")
	return cmd
}
