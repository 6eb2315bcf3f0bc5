package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mntax-dev/mntax/internal/buildinfo"
	"github.com/mntax-dev/mntax/internal/config"
	"github.com/mntax-dev/mntax/internal/schedule"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mntax",
		Short:   "Progressive basic tax over bracket schedules",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newComputeCommand())
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newScheduleCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// loadSchedule resolves which bracket schedule to use: an explicit
// --schedule path wins, then the config file's schedule.file, then the
// built-in schedule.
func loadSchedule(schedulePath, configPath string) (*schedule.Service, error) {
	if schedulePath == "" {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return nil, err
		}
		schedulePath = cfg.Schedule.File
	}

	if schedulePath == "" {
		return schedule.Default(), nil
	}

	svc, err := schedule.Load(schedulePath)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	return svc, nil
}
