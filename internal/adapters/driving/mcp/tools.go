package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

// ListMeetingsInput is the input schema for the list_meetings tool.
type ListMeetingsInput struct {
	From string `json:"from,omitempty" jsonschema:"window start as RFC 3339 timestamp (default now)"`
	To   string `json:"to,omitempty" jsonschema:"window end as RFC 3339 timestamp (default 30 days from start)"`
}

// ListMeetingsOutput is the output schema for the list_meetings tool.
type ListMeetingsOutput struct {
	Meetings []MeetingOutput `json:"meetings"`
	Count    int             `json:"count"`
}

// MeetingOutput represents a single meeting.
type MeetingOutput struct {
	ID        string   `json:"id"`
	Summary   string   `json:"summary"`
	Location  string   `json:"location,omitempty"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	AllDay    bool     `json:"all_day"`
	Organiser string   `json:"organiser,omitempty"`
	Attendees []string `json:"attendees,omitempty"`
	Link      string   `json:"link,omitempty"`
}

// ConnectionStatusOutput is the output schema for the connection_status tool.
type ConnectionStatusOutput struct {
	Configured    bool   `json:"configured"`
	Authenticated bool   `json:"authenticated"`
	WasConnected  bool   `json:"was_connected"`
	AccountEmail  string `json:"account_email,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_meetings",
		Description: "List upcoming Google Calendar meetings in a time window",
	}, s.handleListMeetings)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "connection_status",
		Description: "Report the Google Calendar connection status",
	}, s.handleConnectionStatus)
}

// handleListMeetings handles the list_meetings tool invocation.
func (s *Server) handleListMeetings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListMeetingsInput,
) (*mcp.CallToolResult, ListMeetingsOutput, error) {
	window, err := parseWindow(input.From, input.To)
	if err != nil {
		return nil, ListMeetingsOutput{}, err
	}

	if err := s.ports.Calendar.FetchMeetings(ctx, window); err != nil {
		return nil, ListMeetingsOutput{}, err
	}

	meetings := s.ports.Calendar.Snapshot().Meetings
	output := ListMeetingsOutput{
		Meetings: make([]MeetingOutput, len(meetings)),
		Count:    len(meetings),
	}

	for i := range meetings {
		output.Meetings[i] = MeetingOutput{
			ID:        meetings[i].ID,
			Summary:   meetings[i].Summary,
			Location:  meetings[i].Location,
			Start:     formatTimePoint(meetings[i].Start),
			End:       formatTimePoint(meetings[i].End),
			AllDay:    meetings[i].Start.IsAllDay(),
			Organiser: meetings[i].OrganiserEmail,
			Attendees: meetings[i].Attendees,
			Link:      meetings[i].HTMLLink,
		}
	}

	return nil, output, nil
}

// handleConnectionStatus handles the connection_status tool invocation.
func (s *Server) handleConnectionStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ConnectionStatusOutput, error) {
	state := s.ports.Calendar.Snapshot()
	session := s.ports.Calendar.Session(ctx)

	return nil, ConnectionStatusOutput{
		Configured:    session.ClientID != "",
		Authenticated: state.Authenticated,
		WasConnected:  session.WasConnectedHint,
		AccountEmail:  session.AccountEmail,
	}, nil
}

// parseWindow converts the optional from/to inputs to a fetch window.
// Both empty means the caller gets the default lookahead.
func parseWindow(from, to string) (*domain.FetchWindow, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	start := time.Now()
	if from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return nil, fmt.Errorf("%w: from: %v", domain.ErrInvalidInput, err)
		}
		start = parsed
	}

	end := start.Add(domain.DefaultLookahead)
	if to != "" {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return nil, fmt.Errorf("%w: to: %v", domain.ErrInvalidInput, err)
		}
		end = parsed
	}

	return &domain.FetchWindow{Start: start, End: end}, nil
}

// formatTimePoint renders an event boundary: all-day boundaries keep their
// calendar date, timed ones are RFC 3339.
func formatTimePoint(tp domain.TimePoint) string {
	if tp.IsAllDay() {
		return tp.Date
	}
	if tp.IsZero() {
		return ""
	}
	return tp.Instant.Format(time.RFC3339)
}
