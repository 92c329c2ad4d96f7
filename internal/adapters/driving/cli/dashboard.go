package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/cadence-labs/cadence-cli/internal/adapters/driving/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

The dashboard shows your connection status and upcoming meetings, and
restores the previous session silently when possible.

Controls:
  ↑/k, ↓/j - Navigate meetings
  c        - Connect
  d        - Disconnect
  r        - Refresh
  q        - Quit`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	// Panic recovery to get stack traces out of the alternate screen
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in dashboard: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(calendarService))
	if err != nil {
		return fmt.Errorf("failed to create dashboard: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
