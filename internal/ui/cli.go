package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/figaro/internal/api"
	"github.com/javiermolinar/figaro/internal/config"
	"github.com/javiermolinar/figaro/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	client  *api.Client
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool // Disable colored output
}

// NewApp creates a new CLI application with the given backend client and config.
func NewApp(client *api.Client, cfg *config.Config) *App {
	a := &App{client: client, config: cfg}

	a.root = &cobra.Command{
		Use:   "figaro",
		Short: "A terminal admin console for barbershop scheduling",
		Long: `Figaro is a terminal console for running a barbershop.

It shows each barber's weekly agenda as a slot grid, books appointments
into free slots, and manages barbers, customers, services, and payments
against the booking backend.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.client, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to a local file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	a.root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if a.noColor {
			DisableColor()
		}
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.barbersCmd())
	a.root.AddCommand(a.customersCmd())
	a.root.AddCommand(a.servicesCmd())
	a.root.AddCommand(a.appointmentsCmd())
	a.root.AddCommand(a.bookCmd())
	a.root.AddCommand(a.agendaCmd())
	a.root.AddCommand(a.hoursCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("figaro %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
