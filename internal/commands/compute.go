package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mntax-dev/mntax/internal/config"
)

func newComputeCommand() *cobra.Command {
	var statusText string
	var incomeText string
	var schedulePath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the basic tax for a filing status and income",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(statusText, incomeText, schedulePath, configPath)
		},
	}

	cmd.Flags().StringVar(&statusText, "status", "", "filing status (required)")
	_ = cmd.MarkFlagRequired("status")
	cmd.Flags().StringVar(&incomeText, "income", "", "taxable income (required)")
	_ = cmd.MarkFlagRequired("income")
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "bracket schedule CSV (default: built-in schedule)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file")

	return cmd
}

func runCompute(statusText, incomeText, schedulePath, configPath string) error {
	income, err := decimal.NewFromString(incomeText)
	if err != nil {
		return fmt.Errorf("invalid income %q: %w", incomeText, err)
	}

	svc, err := loadSchedule(schedulePath, configPath)
	if err != nil {
		return err
	}

	tax, err := svc.BasicTaxFor(statusText, income)
	if err != nil {
		return err
	}

	fmt.Println(tax.StringFixed(2))
	return nil
}
