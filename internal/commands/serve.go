package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mntax-dev/mntax/internal/config"
	"github.com/mntax-dev/mntax/internal/logger"
	"github.com/mntax-dev/mntax/internal/schedule"
	"github.com/mntax-dev/mntax/internal/server"
)

func newServeCommand() *cobra.Command {
	var addr string
	var schedulePath string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the basic tax HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, schedulePath, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config addr)")
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "bracket schedule CSV (default: built-in schedule)")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "config file")

	return cmd
}

func runServe(addr, schedulePath, configPath string) error {
	// A .env file is optional.
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger.Init(cfg.Server.Mode)
	defer func() { _ = logger.Sync() }()

	if schedulePath == "" {
		schedulePath = cfg.Schedule.File
	}
	svc := schedule.Default()
	if schedulePath != "" {
		if svc, err = schedule.Load(schedulePath); err != nil {
			return fmt.Errorf("loading schedule: %w", err)
		}
	}

	for _, v := range schedule.ValidateBrackets(svc.All()) {
		logger.Warn("schedule integrity", zap.String("violation", v.Error()))
	}

	logger.Info("starting server",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("brackets", len(svc.All())),
	)

	return server.New(cfg, svc).Run()
}
