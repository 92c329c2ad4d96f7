package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driven"
	"github.com/cadence-labs/cadence-cli/internal/logger"
)

// EventFetcher queries the provider's events endpoint for a window.
// It does not retry; retry policy belongs to the caller.
type EventFetcher struct {
	holder driven.TokenHolder
	events driven.EventSource
	now    func() time.Time
}

// NewEventFetcher creates an event fetcher over the provider handle.
func NewEventFetcher(holder driven.TokenHolder, events driven.EventSource) *EventFetcher {
	return &EventFetcher{
		holder: holder,
		events: events,
		now:    time.Now,
	}
}

// FetchEvents returns the meetings in the window, or in the default
// 30-day lookahead when window is nil. Requires an authenticated session;
// fails with domain.ErrNotAuthenticated before any network call otherwise.
// A degenerate window (end not after start) returns an empty list.
func (f *EventFetcher) FetchEvents(ctx context.Context, window *domain.FetchWindow) ([]domain.MeetingEvent, error) {
	if !f.holder.Token().IsUsable() {
		return nil, domain.ErrNotAuthenticated
	}

	w := domain.DefaultFetchWindow(f.now())
	if window != nil {
		w = *window
	}
	if w.IsDegenerate() {
		return []domain.MeetingEvent{}, nil
	}

	logger.Debug("fetching events %s .. %s", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))

	events, err := f.events.ListEvents(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderRequest, err)
	}

	logger.Debug("fetched %d events", len(events))
	return events, nil
}
