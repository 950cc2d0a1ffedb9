package main

import (
	"context"
	"os"

	"github.com/sandevgo/serialsh/internal/config"
	"github.com/sandevgo/serialsh/internal/core"
	"github.com/sandevgo/serialsh/internal/service/ui"
	"github.com/sandevgo/serialsh/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     core.AppName,
	Short:   "serialsh — a command shell for serial consoles",
	Long:    `serialsh reads characters from a serial port or a terminal and dispatches each line to a table of commands.`,
	Version: core.Version,
}

func Execute() {
	CustomizeHelp(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

// setupLogger installs the logger. An empty logPath logs to stderr.
func setupLogger(ctx context.Context, logPath string) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	if logPath == "" {
		return log.NewContextWithLogger(ctx, isDebug, nil)
	}

	f, err := log.OpenLogFile(logPath)
	if err != nil {
		ctx, flush := log.NewContextWithLogger(ctx, isDebug, nil)
		log.FromCtx(ctx).Warn().Err(err).Str("path", logPath).Msg("falling back to stderr")
		return ctx, flush
	}

	ctx, flush := log.NewContextWithLogger(ctx, isDebug, f)
	return ctx, func() {
		flush()
		_ = f.Close()
	}
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
