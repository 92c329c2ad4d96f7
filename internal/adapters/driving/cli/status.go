package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Google Calendar connection status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	ctx := cmd.Context()
	calendarService.Start(ctx)

	state := calendarService.Snapshot()
	session := calendarService.Session(ctx)

	cmd.Println("Google Calendar")
	cmd.Println("===============")

	if session.ClientID == "" {
		cmd.Println("  Configured: no")
		cmd.Println()
		cmd.Println("Set a client ID with: cadence config set google.client_id YOUR_CLIENT_ID")
		return nil
	}

	cmd.Println("  Configured: yes")
	cmd.Printf("  Connected: %s\n", yesNo(state.Authenticated))
	if session.AccountEmail != "" {
		cmd.Printf("  Account: %s\n", session.AccountEmail)
	}
	if !state.Authenticated && session.WasConnectedHint {
		cmd.Println("  A previous session was connected. Run 'cadence connect' to reconnect.")
	}
	if state.Err != "" {
		cmd.Printf("  Last error: %s\n", state.Err)
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
