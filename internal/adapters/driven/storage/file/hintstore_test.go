package file

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadence-labs/cadence-cli/internal/core/domain"
)

func TestHintStore_RoundTrip(t *testing.T) {
	store, err := NewHintStore(t.TempDir())
	require.NoError(t, err)

	hint, err := store.Load()
	require.NoError(t, err)
	assert.False(t, hint.Connected)

	require.NoError(t, store.Save(domain.ConnectionHint{Connected: true, ClientID: "client-1"}))

	hint, err = store.Load()
	require.NoError(t, err)
	assert.True(t, hint.Matches("client-1"))
	assert.False(t, hint.Matches("client-2"))

	require.NoError(t, store.Clear())
	hint, err = store.Load()
	require.NoError(t, err)
	assert.False(t, hint.Connected)
}

func TestHintStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewHintStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(domain.ConnectionHint{Connected: true, ClientID: "client-1"}))

	reopened, err := NewHintStore(dir)
	require.NoError(t, err)
	hint, err := reopened.Load()
	require.NoError(t, err)
	assert.True(t, hint.Matches("client-1"))
}

func TestHintStore_CorruptFileIsNoHint(t *testing.T) {
	store, err := NewHintStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte("not [valid toml"), 0600))

	hint, err := store.Load()
	require.NoError(t, err)
	assert.False(t, hint.Connected)
}

func TestHintStore_ClearIsIdempotent(t *testing.T) {
	store, err := NewHintStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}
