package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sievego"
)

func main() {
	var (
		verbose  bool
		jsonLogs bool
	)

	cmd := &cobra.Command{
		Use:          "sievego <n> [n...]",
		Short:        "Classify unsigned integers as prime or composite",
		Long:         "Batch-classifies decimal uint64 candidates using a vectorized small-prime sieve with a trial-division fallback.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := make([]uint64, 0, len(args))
			for _, arg := range args {
				n, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid candidate %q: %w", arg, err)
				}
				candidates = append(candidates, n)
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := sievego.NewTextLogger(level)
			if jsonLogs {
				logger = sievego.NewJSONLogger(level)
			}

			s, err := sievego.New(sievego.WithLogger(logger))
			if err != nil {
				return err
			}

			for i, prime := range s.Classify(candidates) {
				verdict := "composite"
				if prime {
					verdict = "prime"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%12d -> %s\n", candidates[i], verdict)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "emit JSON-formatted logs")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
