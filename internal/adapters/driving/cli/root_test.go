package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "cadence", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{
		"connect", "disconnect", "status", "meetings",
		"config", "dashboard", "mcp", "version",
	} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestSetServices(t *testing.T) {
	calendar, config, cleanup := setupTestServices()
	defer cleanup()

	SetServices(config, calendar)

	assert.Equal(t, config, configStore)
	assert.Equal(t, calendar, calendarService)
}

func TestRootCmd_Help(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Google Calendar")
}
