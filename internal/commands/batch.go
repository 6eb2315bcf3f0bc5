package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mntax-dev/mntax/internal/batch"
	"github.com/mntax-dev/mntax/internal/config"
	"github.com/mntax-dev/mntax/internal/logger"
)

func newBatchCommand() *cobra.Command {
	var inputPath string
	var outputPath string
	var schedulePath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute basic tax for a CSV of filings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(inputPath, outputPath, schedulePath, configPath)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "filings CSV to read (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&outputPath, "output", "", "results CSV to write (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "bracket schedule CSV (default: built-in schedule)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file")

	return cmd
}

func runBatch(inputPath, outputPath, schedulePath, configPath string) error {
	logger.Init("")
	defer func() { _ = logger.Sync() }()

	svc, err := loadSchedule(schedulePath, configPath)
	if err != nil {
		return err
	}

	n, err := batch.Run(svc, inputPath, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d filings to %s\n", n, outputPath)
	return nil
}
