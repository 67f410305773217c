package main

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/seuhd/campus-coffee/internal/model"
)

var posOutput string

var posCmd = &cobra.Command{
	Use:   "pos",
	Short: "Inspect and manage stored POS records",
}

var posListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all POS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := initEnv(ctx, "pos")
		if err != nil {
			return err
		}
		defer env.Close()

		all, err := env.Service.GetAll(ctx)
		if err != nil {
			return err
		}
		if all == nil {
			all = []model.Pos{}
		}
		return writePos(cmd.OutOrStdout(), posOutput, all)
	},
}

var posGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one POS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		env, err := initEnv(ctx, "pos")
		if err != nil {
			return err
		}
		defer env.Close()

		p, err := env.Service.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return writePos(cmd.OutOrStdout(), posOutput, p)
	},
}

var posDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one POS",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		env, err := initEnv(ctx, "pos")
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Service.Delete(ctx, id); err != nil {
			return err
		}
		zap.L().Info("pos deleted", zap.Int64("id", id))
		return nil
	},
}

var posClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every POS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		env, err := initEnv(ctx, "pos")
		if err != nil {
			return err
		}
		defer env.Close()

		return env.Service.Clear(ctx)
	},
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, eris.Errorf("invalid pos id %q", raw)
	}
	return id, nil
}

// writePos renders v as indented JSON or as YAML.
func writePos(w io.Writer, format string, v any) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(v), "write json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "write yaml")
		}
		return eris.Wrap(enc.Close(), "write yaml")
	default:
		return eris.Errorf("unsupported output format %q (json, yaml)", format)
	}
}

func init() {
	posCmd.PersistentFlags().StringVarP(&posOutput, "output", "o", "json", "output format: json or yaml")
	posCmd.AddCommand(posListCmd, posGetCmd, posDeleteCmd, posClearCmd)
	rootCmd.AddCommand(posCmd)
}
