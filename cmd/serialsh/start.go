package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/serialsh/internal/config"
	"github.com/sandevgo/serialsh/pkg/log"
	"github.com/sandevgo/serialsh/pkg/srv"
	"github.com/spf13/cobra"
)

var (
	startDevice    string
	startTransport string
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the console",
	Long:  `Attaches the shell to the configured transport (serial device, raw stdio or readline) and runs until the input ends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// .env must be loaded before any config is parsed
		envErr := initEnv(config.GetRuntimePath())

		// flags override the environment
		if startTransport != "" {
			_ = os.Setenv("SERIALSH_TRANSPORT", startTransport)
		}
		if startDevice != "" {
			_ = os.Setenv("SERIALSH_DEVICE", startDevice)
			if startTransport == "" {
				_ = os.Setenv("SERIALSH_TRANSPORT", config.TransportSerial)
			}
		}

		// stderr until the config names a log file
		var flushLog func()
		ctx, flushLog = setupLogger(ctx, "")
		defer func() { flushLog() }()

		if envErr != nil {
			log.FromCtx(ctx).Warn().Err(envErr).Msg("failed to load .env file")
		}

		appCfg := config.NewAppConfig(ctx)
		if logPath := appCfg.GetLogPath(); logPath != "" {
			flushLog()
			ctx, flushLog = setupLogger(ctx, logPath)
		}
		logger := log.FromCtx(ctx)

		logger.Debug().Str("transport", appCfg.Transport).Msg("starting serialsh")

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		services, err := NewServices(ctx, appCfg)
		if err != nil {
			return err
		}

		srv.StartServices(ctx, cancel, services)
		srv.ShutdownServices(ctx, services)

		logger.Debug().Msg("serialsh has been shut down")
		return nil
	},
}

func init() {
	startCmd.Flags().StringVar(&startDevice, "device", "", "serial device path (implies --transport serial)")
	startCmd.Flags().StringVarP(&startTransport, "transport", "t", "", "serial, stdio or readline")
	rootCmd.AddCommand(startCmd)
}
