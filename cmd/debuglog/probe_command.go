package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"debuglog/internal/guard"
	"debuglog/internal/logging"
)

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <path>...",
		Short: "Check that paths are readable regular files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			logger, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := logger.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("close log sink: %w", closeErr)
				}
			}()

			var firstErr error
			for _, path := range args {
				if err := probePath(logger, path); err != nil && firstErr == nil {
					firstErr = err
				}
			}
			if firstErr != nil {
				return fmt.Errorf("probe: %w", firstErr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d path(s) ok\n", len(args))
			return nil
		},
	}
}

func probePath(logger *logging.Logger, path string) error {
	logger.Trace("probing %s", path)

	info, statErr := os.Stat(path)
	if err := guard.CheckErr(logger, statErr, "stat %s", path); err != nil {
		return err
	}
	if err := guard.CheckDebug(logger, info.Mode().IsRegular(), "%s is not a regular file", path); err != nil {
		return err
	}

	file, openErr := os.Open(path)
	if err := guard.CheckErr(logger, openErr, "open %s", path); err != nil {
		return err
	}
	defer file.Close()

	logger.Info("%s: %d bytes", path, info.Size())
	return nil
}
