// Package cli implements the command-line driving adapter for cadence.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	configStore     driven.ConfigStore
	calendarService driving.CalendarService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Google Calendar from your terminal",
	Long: `Cadence connects your terminal to Google Calendar.

Connect once with OAuth, then list upcoming meetings, check connection
status, open the interactive dashboard, or serve the calendar to AI
assistants over MCP.

Get started:
  cadence config set google.client_id YOUR_CLIENT_ID
  cadence connect
  cadence meetings`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion overrides the reported build version.
func SetVersion(v string) {
	version = v
}

// SetServices injects the service implementations the commands use.
// The composition root calls this before Execute.
func SetServices(config driven.ConfigStore, calendar driving.CalendarService) {
	configStore = config
	calendarService = calendar
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
