package main

import (
	"github.com/sandevgo/serialsh/internal/config"
	"github.com/sandevgo/serialsh/internal/service/setup"
	"github.com/sandevgo/serialsh/pkg/log"
	"github.com/spf13/cobra"
)

var setupForce bool

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Write the console configuration interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = initEnv(config.GetRuntimePath())

		ctx, flushLog := setupLogger(cmd.Context(), "")
		defer flushLog()
		logger := log.FromCtx(ctx)

		appCfg, err := config.ParseAppConfig()
		if err != nil {
			// start the wizard from defaults; it rewrites the broken values
			logger.Warn().Err(err).Msg("current configuration is invalid")
			appCfg = &config.AppConfig{Transport: config.TransportStdio, Prompt: "> ", Echo: true, Banner: true, Baud: 115200, OpenRetries: 5, RuntimePath: config.GetRuntimePath()}
		}
		shellCfg, err := config.ParseShellConfig()
		if err != nil {
			return err
		}

		state := setup.NewState(*appCfg, *shellCfg)
		state.Overwrite = setupForce

		if _, err := setup.RunWizard(state); err != nil {
			return err
		}

		logger.Info().Str("path", appCfg.GetEnvPath()).Msg("configuration written. You can now run 'serialsh start'.")
		return nil
	},
}

func init() {
	setupCmd.Flags().BoolVarP(&setupForce, "force", "f", false, "overwrite an existing .env file")
	rootCmd.AddCommand(setupCmd)
}
