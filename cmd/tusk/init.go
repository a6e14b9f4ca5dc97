package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/tuskshell/internal/config"
	"github.com/sandevgo/tuskshell/internal/service/installer"
	"github.com/sandevgo/tuskshell/pkg/env"
	"github.com/sandevgo/tuskshell/pkg/log"
	"github.com/spf13/cobra"
)

var (
	force       bool
	interactive bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration to the runtime .env file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, flushLog, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer flushLog()

		path := cfg.GetEnvPath()
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}

		if interactive {
			if cfg, err = configure(cfg); err != nil {
				return err
			}
		}

		if err := env.WriteFile(path, cfg); err != nil {
			return err
		}

		log.FromCtx(ctx).Info().Str("path", path).Msg("configuration written")
		return nil
	},
}

// configure runs the wizard seeded with cfg and parses its answers.
func configure(cfg *config.AppConfig) (*config.AppConfig, error) {
	defaults, err := env.ToMap(cfg)
	if err != nil {
		return nil, err
	}

	vars, err := installer.RunWizard(defaults)
	if err != nil {
		return nil, err
	}

	return config.FromEnvMap(vars)
}

func init() {
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing .env file")
	initCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose settings in a terminal wizard")
	rootCmd.AddCommand(initCmd)
}
