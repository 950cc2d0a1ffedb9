package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/serialsh/internal/config"
	"github.com/sandevgo/serialsh/internal/service/command"
	"github.com/sandevgo/serialsh/internal/service/console"
	"github.com/sandevgo/serialsh/internal/transport/cli"
	"github.com/sandevgo/serialsh/internal/transport/serial"
	"github.com/sandevgo/serialsh/pkg/srv"
)

func NewServices(ctx context.Context, appCfg *config.AppConfig) ([]srv.Service, error) {
	// 1. Configuration
	shellCfg := config.NewShellConfig(ctx)

	// 2. Commands
	router := command.New(command.NewCommands())

	// 3. Transport + console
	if appCfg.Transport == config.TransportReadline {
		rl, err := cli.NewReadLine(appCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to start readline: %w", err)
		}
		c, err := console.New(ctx, appCfg, shellCfg.ToShell(), router, rl.Stdout(), console.WithLineMode())
		if err != nil {
			_ = rl.Shutdown(ctx)
			return nil, err
		}
		rl.Attach(c)
		return []srv.Service{rl}, nil
	}

	port, err := serial.Open(ctx, appCfg)
	if err != nil {
		return nil, err
	}
	c, err := console.New(ctx, appCfg, shellCfg.ToShell(), router, port)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	// shutdown runs in reverse, so the port closes after the console is done
	return []srv.Service{
		srv.NewCleanup(port.Close),
		serial.NewService(port, c),
	}, nil
}

func initEnv(runtimePath string) error {
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return godotenv.Load(envFile)
}
