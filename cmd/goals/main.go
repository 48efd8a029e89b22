package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/templui/mindspace/cmd/goals/cmd"
	"github.com/templui/mindspace/internal/app"
	"github.com/templui/mindspace/internal/config"
	"github.com/templui/mindspace/internal/logger"
	"github.com/templui/mindspace/internal/service"
)

func main() {
	var a *app.App

	open := func(ctx context.Context) (*service.GoalService, error) {
		if a != nil {
			return a.GoalService, nil
		}

		cfg := config.Load()
		logger.Init(logger.Options{
			Development: cfg.IsDevelopment(),
			SentryDSN:   cfg.SentryDSN,
			Environment: cfg.AppEnv,
			Output:      os.Stderr,
		})

		var err error
		a, err = app.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return a.GoalService, nil
	}

	rootCmd := &cobra.Command{
		Use:          "goals",
		Short:        "Manage MindSpace goals from the terminal",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.ListCmd(open))
	rootCmd.AddCommand(cmd.AddCmd(open))
	rootCmd.AddCommand(cmd.CheckInCmd(open))
	rootCmd.AddCommand(cmd.DeleteCmd(open))
	rootCmd.AddCommand(cmd.ExportCmd(open))

	err := rootCmd.Execute()

	if a != nil {
		a.Close()
	}
	logger.Flush()

	if err != nil {
		os.Exit(1)
	}
}
