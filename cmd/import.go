package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importNodeID int64

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a POS from an OpenStreetMap node",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if importNodeID <= 0 {
			return eris.Errorf("--node must be a positive OSM node id, got %d", importNodeID)
		}

		env, err := initEnv(ctx, "import")
		if err != nil {
			return err
		}
		defer env.Close()

		saved, err := env.Service.ImportFromOsmNode(ctx, importNodeID)
		if err != nil {
			return err
		}

		zap.L().Info("import complete",
			zap.Int64("node_id", importNodeID),
			zap.Int64("id", *saved.ID),
			zap.String("name", saved.Name),
		)
		return writePos(cmd.OutOrStdout(), "json", saved)
	},
}

func init() {
	importCmd.Flags().Int64Var(&importNodeID, "node", 0, "OSM node id (required)")
	_ = importCmd.MarkFlagRequired("node")
	rootCmd.AddCommand(importCmd)
}
