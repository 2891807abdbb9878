package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/raoulx24/backup-pruner/internal/config"
	"github.com/raoulx24/backup-pruner/internal/logging"
	"github.com/raoulx24/backup-pruner/internal/metrics"
	"github.com/raoulx24/backup-pruner/internal/retention"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "backup-pruner",
		Short: "Back up recent files and delete expired ones",
		Long: `Scans the source directory once: files modified within the retention window
are copied to the destination directory, older files are deleted. Both actions
are recorded in the source and destination logs.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), configPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (built-in defaults when empty)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(out io.Writer, configPath string, verbose bool) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	// Logger
	logg, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	var opts []retention.Option
	if cfg.Metrics.Textfile != "" {
		opts = append(opts, retention.WithMetrics(metrics.New()))
	}

	rep, err := retention.New(cfg, logg, opts...).Run()
	if err != nil {
		logg.Error("retention run failed", "run_id", rep.RunID, "error", err)
		return err
	}

	fmt.Fprintln(out, "Operation completed. Logs available at:")
	fmt.Fprintf(out, " - %s\n", rep.SourceLog)
	fmt.Fprintf(out, " - %s\n", rep.DestinationLog)
	return nil
}
