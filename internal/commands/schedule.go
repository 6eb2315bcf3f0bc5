package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mntax-dev/mntax/internal/config"
	"github.com/mntax-dev/mntax/internal/schedule"
)

func newScheduleCommand() *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect, export, and validate bracket schedules",
	}
	scheduleCmd.AddCommand(newScheduleShowCommand())
	scheduleCmd.AddCommand(newScheduleExportCommand())
	scheduleCmd.AddCommand(newScheduleCheckCommand())
	return scheduleCmd
}

func newScheduleShowCommand() *cobra.Command {
	var schedulePath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the bracket schedule per filing status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleShow(schedulePath, configPath)
		},
	}

	cmd.Flags().StringVar(&schedulePath, "schedule", "", "bracket schedule CSV (default: built-in schedule)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file")

	return cmd
}

func runScheduleShow(schedulePath, configPath string) error {
	svc, err := loadSchedule(schedulePath, configPath)
	if err != nil {
		return err
	}

	for _, status := range svc.Statuses() {
		fmt.Println(status)
		for _, b := range svc.Brackets(status) {
			upper := "and up"
			if !b.OpenEnded() {
				upper = "to " + b.Upper.StringFixed(2)
			}
			fmt.Printf("  %s %s: base %s, rate %s\n",
				b.Lower.StringFixed(2), upper, b.Base.StringFixed(2), b.Rate.String())
		}
	}
	return nil
}

func newScheduleExportCommand() *cobra.Command {
	var outPath string
	var schedulePath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the bracket schedule as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleExport(outPath, schedulePath, configPath)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "file to write (default: stdout)")
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "bracket schedule CSV (default: built-in schedule)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file")

	return cmd
}

func runScheduleExport(outPath, schedulePath, configPath string) error {
	svc, err := loadSchedule(schedulePath, configPath)
	if err != nil {
		return err
	}

	if outPath == "" {
		return schedule.WriteBrackets(os.Stdout, svc.All())
	}

	if err := svc.Save(outPath); err != nil {
		return err
	}
	fmt.Printf("Exported %d brackets to %s\n", len(svc.All()), outPath)
	return nil
}

func newScheduleCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a bracket schedule CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleCheck(args[0])
		},
	}
}

func runScheduleCheck(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening schedule: %w", err)
	}
	defer f.Close()

	brackets, err := schedule.ReadBrackets(f)
	if err != nil {
		return fmt.Errorf("reading schedule: %w", err)
	}

	violations := schedule.ValidateBrackets(brackets)
	if len(violations) == 0 {
		fmt.Printf("OK: %d brackets, no violations\n", len(brackets))
		return nil
	}

	for _, v := range violations {
		fmt.Fprintln(os.Stderr, v.Error())
	}
	return fmt.Errorf("%d violations found", len(violations))
}
