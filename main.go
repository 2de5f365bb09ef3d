// Package main provides the entry point for WireWarden, a manager for
// WireGuard interfaces defined by .conf files in a single directory.
//
// Features:
//   - Discovery and validation of interface definitions
//   - Live active-state display with a configurable polling interval
//   - Safe bring-up/bring-down through wg-quick with privilege
//     escalation via pkexec when needed
//   - Single-connection enforcement: at most one interface active
//   - Interactive terminal UI plus a scriptable CLI
//
// Running without a subcommand launches the terminal UI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yllada/wirewarden/cli"
	"github.com/yllada/wirewarden/common"
	"github.com/yllada/wirewarden/config"
	"github.com/yllada/wirewarden/journal"
	"github.com/yllada/wirewarden/vpn"
)

// Build-time version metadata, set via -ldflags.
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		dirFlag    string
		configFlag string
		debug      bool
	)

	app := &cli.App{
		Version:   appVersion,
		BuildTime: buildTime,
		Commit:    commitSHA,
	}

	root := &cobra.Command{
		Use:           "wirewarden",
		Short:         "Manage WireGuard interfaces defined in a directory",
		Version:       appVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			level := cfg.LogLevel
			if debug {
				level = "debug"
			}
			if err := common.InitLogger(common.LogConfig{Level: level, EnableFile: cfg.LogToFile}); err != nil {
				return err
			}

			dir, err := config.ResolveConfigDir(dirFlag, cfg)
			if err != nil {
				return err
			}

			manager := vpn.NewManager(dir)
			app.Config = cfg
			app.Dir = dir
			app.Manager = manager

			if cfg.HistoryEnabled {
				if j, err := openJournal(cfg.HistoryLimit); err != nil {
					common.LogWarn("transition history disabled: %v", err)
				} else {
					app.Journal = j
					manager.SetRecorder(j)
				}
			}

			if !vpn.CommandExists("wg") || !vpn.CommandExists("wg-quick") {
				common.LogWarn("wireguard-tools not found on PATH; interfaces will appear inactive")
			}

			common.LogInfo("%s %s starting (config dir %s)", common.AppName, appVersion, dir)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunTUI()
		},
	}

	root.PersistentFlags().StringVar(&dirFlag, "dir", "", "Directory containing WireGuard .conf files")
	root.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the settings file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(app.Commands()...)

	err := root.ExecuteContext(ctx)
	_ = app.Journal.Close()
	_ = common.CloseLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openJournal(limit int) (*journal.Journal, error) {
	path, err := journal.DefaultPath()
	if err != nil {
		return nil, err
	}
	return journal.Open(path, limit)
}
