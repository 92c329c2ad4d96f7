package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect from Google Calendar",
	Long: `Disconnect from Google Calendar.

Revokes the access token with Google on a best-effort basis and always
clears the local session, even when revocation fails.`,
	RunE: runDisconnect,
}

func init() {
	rootCmd.AddCommand(disconnectCmd)
}

func runDisconnect(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	calendarService.SignOut(cmd.Context())
	cmd.Println("Disconnected from Google Calendar.")
	return nil
}
