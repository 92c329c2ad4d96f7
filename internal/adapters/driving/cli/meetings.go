package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

var (
	meetingsFrom string
	meetingsTo   string
	meetingsDays int
	meetingsJSON bool
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "List upcoming meetings",
	Long: `List meetings from your primary Google Calendar.

Without flags the next 30 days are shown. Narrow the window with --days
or pin it exactly with --from and --to (RFC 3339 timestamps).

Examples:
  cadence meetings
  cadence meetings --days 7
  cadence meetings --from 2026-03-01T00:00:00Z --to 2026-04-01T00:00:00Z`,
	RunE: runMeetings,
}

func init() {
	meetingsCmd.Flags().StringVar(&meetingsFrom, "from", "", "window start (RFC 3339)")
	meetingsCmd.Flags().StringVar(&meetingsTo, "to", "", "window end (RFC 3339)")
	meetingsCmd.Flags().IntVarP(&meetingsDays, "days", "d", 0, "days ahead to include (0 = default window)")
	meetingsCmd.Flags().BoolVar(&meetingsJSON, "json", false, "output meetings as JSON")
	rootCmd.AddCommand(meetingsCmd)
}

func runMeetings(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	window, err := meetingsWindow()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	calendarService.Start(ctx)

	if err := calendarService.FetchMeetings(ctx, window); err != nil {
		if state := calendarService.Snapshot(); state.Err != "" {
			return errors.New(state.Err)
		}
		return err
	}

	meetings := calendarService.Snapshot().Meetings
	if meetingsJSON {
		return outputMeetingsJSON(cmd, meetings)
	}
	return outputMeetingsTable(cmd, meetings)
}

// meetingsWindow builds the fetch window from the flags. Nil means the
// default lookahead.
func meetingsWindow() (*domain.FetchWindow, error) {
	if meetingsDays < 0 {
		return nil, errors.New("--days must not be negative")
	}
	if meetingsFrom == "" && meetingsTo == "" && meetingsDays == 0 {
		return nil, nil
	}

	start := time.Now()
	if meetingsFrom != "" {
		parsed, err := time.Parse(time.RFC3339, meetingsFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid --from timestamp: %w", err)
		}
		start = parsed
	}

	var end time.Time
	switch {
	case meetingsTo != "":
		parsed, err := time.Parse(time.RFC3339, meetingsTo)
		if err != nil {
			return nil, fmt.Errorf("invalid --to timestamp: %w", err)
		}
		end = parsed
	case meetingsDays > 0:
		end = start.AddDate(0, 0, meetingsDays)
	default:
		end = start.Add(domain.DefaultLookahead)
	}

	return &domain.FetchWindow{Start: start, End: end}, nil
}

func outputMeetingsJSON(cmd *cobra.Command, meetings []domain.MeetingEvent) error {
	data, err := json.MarshalIndent(meetings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal meetings: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMeetingsTable(cmd *cobra.Command, meetings []domain.MeetingEvent) error {
	if len(meetings) == 0 {
		cmd.Println("No meetings in this window.")
		return nil
	}

	cmd.Printf("Meetings (%d):\n", len(meetings))
	cmd.Println()
	for i := range meetings {
		cmd.Printf("  %s  %s\n", formatEventStart(meetings[i]), eventTitle(meetings[i]))
		if meetings[i].Location != "" {
			cmd.Printf("      Location: %s\n", meetings[i].Location)
		}
		if meetings[i].OrganiserEmail != "" {
			cmd.Printf("      Organiser: %s\n", meetings[i].OrganiserEmail) //nolint:misspell // British English
		}
	}

	return nil
}

func eventTitle(event domain.MeetingEvent) string {
	if event.Summary == "" {
		return "(no title)"
	}
	return event.Summary
}

// formatEventStart keeps all-day calendar dates verbatim and renders timed
// events in local time.
func formatEventStart(event domain.MeetingEvent) string {
	if event.IsAllDay() {
		return event.Start.Date + " (all day)"
	}
	return event.Start.Instant.Local().Format("Mon 02 Jan 15:04")
}
