package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "campus-coffee",
	Short: "Manage campus points of sale",
	Long:  "Stores campus cafés, bakeries, vending machines and cafeterias, imports them from OpenStreetMap nodes and serves them over a JSON API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
