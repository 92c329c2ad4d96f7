package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authadapter "github.com/cadence-labs/cadence-cli/internal/adapters/driven/auth"
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

func authedHolder() *authadapter.TokenHolder {
	holder := authadapter.NewTokenHolder()
	holder.SetToken(&domain.OAuthToken{AccessToken: "at", Expiry: time.Now().Add(time.Hour)})
	return holder
}

func TestEventFetcher_RequiresAuthentication(t *testing.T) {
	source := &fakeEventSource{}
	f := NewEventFetcher(authadapter.NewTokenHolder(), source)

	_, err := f.FetchEvents(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Zero(t, source.calls(), "no network call before the auth check")
}

func TestEventFetcher_DefaultWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	source := &fakeEventSource{events: []domain.MeetingEvent{{ID: "e1"}}}
	f := NewEventFetcher(authedHolder(), source)
	f.now = func() time.Time { return now }

	events, err := f.FetchEvents(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, events, 1)
	require.Equal(t, 1, source.calls())
	assert.Equal(t, now, source.windows[0].Start)
	assert.Equal(t, now.Add(domain.DefaultLookahead), source.windows[0].End)
}

func TestEventFetcher_DegenerateWindowReturnsEmpty(t *testing.T) {
	source := &fakeEventSource{}
	f := NewEventFetcher(authedHolder(), source)

	now := time.Now()
	window := domain.FetchWindow{Start: now, End: now.Add(-time.Hour)}
	events, err := f.FetchEvents(context.Background(), &window)

	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events)
	assert.Zero(t, source.calls())
}

func TestEventFetcher_WrapsProviderErrors(t *testing.T) {
	source := &fakeEventSource{err: errors.New("backend returned 500")}
	f := NewEventFetcher(authedHolder(), source)

	_, err := f.FetchEvents(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrProviderRequest)
	assert.Contains(t, err.Error(), "backend returned 500")
}
