// Package cli provides the command-line interface for WireWarden.
// Every subcommand is a thin wrapper over the vpn.Manager boundary so
// the terminal UI and the CLI cannot disagree about behavior.
package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yllada/wirewarden/config"
	"github.com/yllada/wirewarden/journal"
	"github.com/yllada/wirewarden/ui"
	"github.com/yllada/wirewarden/vpn"
)

// App bundles the wired-up collaborators the subcommands act on. It is
// populated by the root command's PersistentPreRunE before any RunE
// fires.
type App struct {
	Config  *config.Config
	Dir     string
	Manager *vpn.Manager
	Journal *journal.Journal

	Version   string
	BuildTime string
	Commit    string
}

// Commands returns the wirewarden subcommand tree.
func (a *App) Commands() []*cobra.Command {
	return []*cobra.Command{
		a.tuiCmd(),
		a.listCmd(),
		a.statusCmd(),
		a.upCmd(),
		a.downCmd(),
		a.historyCmd(),
		a.doctorCmd(),
		a.versionCmd(),
	}
}

// RunTUI launches the terminal UI. Shared by the bare root command and
// the explicit tui subcommand.
func (a *App) RunTUI() error {
	notifier := ui.NewDBusNotifier(a.Config.ShowNotifications)
	defer notifier.Close()
	return ui.Run(a.Manager, a.Config, notifier)
}

func (a *App) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RunTUI()
		},
	}
}

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the interfaces defined in the config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := a.Manager.List()
			if err != nil {
				return err
			}
			active := a.Manager.Active(cmd.Context())

			if len(inv.Valid) == 0 && len(inv.Invalid) == 0 {
				fmt.Printf("No WireGuard configs found in %s\n", a.Dir)
				return nil
			}

			if len(inv.Valid) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tSTATE\tCONFIG")
				fmt.Fprintln(w, "----\t-----\t------")
				for _, entry := range inv.Valid {
					state := "inactive"
					if active.Has(entry.Name) {
						state = "active"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, state, entry.Path)
				}
				w.Flush()
			}

			if inv.Gated() {
				fmt.Println()
				fmt.Println("Invalid config file names (letters, numbers, '+', '-', '_', '=' and '.' only):")
				for _, name := range inv.Invalid {
					fmt.Printf("  %s\n", name)
				}
				fmt.Println("All transitions are disabled until these files are renamed or removed.")
			}
			return nil
		},
	}
}

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the currently active interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Active: %s\n", a.Manager.Active(cmd.Context()))
			return nil
		},
	}
}

func (a *App) upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up NAME",
		Short: "Bring an interface up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transition(cmd, args[0], vpn.DirectionUp)
		},
	}
}

func (a *App) downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down NAME",
		Short: "Bring an interface down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transition(cmd, args[0], vpn.DirectionDown)
		},
	}
}

func (a *App) transition(cmd *cobra.Command, name string, dir vpn.Direction) error {
	if _, err := a.Manager.List(); err != nil {
		return err
	}

	var res vpn.TransitionResult
	if dir == vpn.DirectionUp {
		res = a.Manager.Up(cmd.Context(), name)
	} else {
		res = a.Manager.Down(cmd.Context(), name)
	}

	if !res.OK {
		fmt.Printf("Active: %s\n", res.Active)
		return errors.New(res.Message)
	}
	fmt.Printf("✓ %s\n", res.Message)
	fmt.Printf("Active: %s\n", res.Active)
	return nil
}

func (a *App) historyCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent transition attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Journal == nil {
				fmt.Println("History is disabled (history_enabled: false).")
				return nil
			}
			entries, err := a.Journal.Recent(cmd.Context(), n)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No transitions recorded yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tACTION\tNAME\tRESULT")
			fmt.Fprintln(w, "----\t------\t----\t------")
			for _, e := range entries {
				result := "✓ ok"
				if !e.OK {
					result = "failed: " + e.Message
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.At.Local().Format("2006-01-02 15:04:05"), e.Direction, e.Name, result)
			}
			w.Flush()
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", 20, "Number of entries to show")
	return cmd
}

func (a *App) doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment WireWarden depends on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, tool := range []string{"wg", "wg-quick", "pkexec"} {
				state := "missing"
				if vpn.CommandExists(tool) {
					state = "found"
				}
				fmt.Fprintf(w, "%s\t%s\n", tool, state)
			}

			euid := os.Geteuid()
			fmt.Fprintf(w, "euid\t%d\n", euid)

			strategy := "direct (running as root)"
			if euid != 0 {
				if vpn.CommandExists("pkexec") {
					strategy = "pkexec wrapper"
				} else {
					strategy = "direct (no helper; transitions will likely fail)"
				}
			}
			fmt.Fprintf(w, "escalation\t%s\n", strategy)
			fmt.Fprintf(w, "config dir\t%s\n", a.Dir)
			w.Flush()
			return nil
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wirewarden %s (built %s, commit %s)\n", a.Version, a.BuildTime, a.Commit)
		},
	}
}
