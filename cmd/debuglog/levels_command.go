package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"debuglog/internal/logging"
)

func newLevelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List severities and whether the configured minimum admits them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			minimum, err := logging.ParseSeverity(cfg.Logging.Level)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(logging.Severities()))
			for _, s := range logging.Severities() {
				rows = append(rows, []string{
					s.String(),
					strconv.Itoa(int(s)),
					s.SlogLevel().String(),
					yesNo(s >= minimum),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Minimum: %s\n", minimum)
			fmt.Fprintln(out, renderTable(
				[]string{"Severity", "Ordinal", "Slog", "Emitted"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
