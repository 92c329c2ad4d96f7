package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to Google Calendar",
	Long: `Connect to Google Calendar with OAuth.

Opens your browser to Google's consent screen. Every connect re-prompts
for consent, so this is also the way to switch accounts or re-grant
access after revoking it.

Requires a Google OAuth client ID:
  cadence config set google.client_id YOUR_CLIENT_ID`,
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	ctx := cmd.Context()
	calendarService.Start(ctx)

	if state := calendarService.Snapshot(); !state.Initialized {
		return errors.New(state.Err)
	}

	cmd.Println("Opening your browser for Google consent...")
	if err := calendarService.SignIn(ctx); err != nil {
		return err
	}

	session := calendarService.Session(ctx)
	if session.AccountEmail != "" {
		cmd.Printf("Connected to Google Calendar as %s.\n", session.AccountEmail)
	} else {
		cmd.Println("Connected to Google Calendar.")
	}
	return nil
}
