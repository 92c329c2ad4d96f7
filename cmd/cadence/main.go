// Command cadence is the Google Calendar terminal client.
package main

import (
	"fmt"
	"os"

	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/auth"
	configfile "github.com/cadence-labs/cadence-cli/internal/adapters/driven/config/file"
	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/google"
	filestorage "github.com/cadence-labs/cadence-cli/internal/adapters/driven/storage/file"
	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/storage/sqlite"
	"github.com/cadence-labs/cadence-cli/internal/adapters/driving/cli"
	"github.com/cadence-labs/cadence-cli/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	hints, err := filestorage.NewHintStore("")
	if err != nil {
		return fmt.Errorf("opening hint store: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening credentials store: %w", err)
	}
	defer store.Close() //nolint:errcheck

	holder := auth.NewTokenHolder()
	clientID := config.GetString(configfile.KeyClientID)

	factory := google.NewFactory(
		holder,
		store.CredentialsStore(),
		google.WithClientSecret(config.GetString(configfile.KeyClientSecret)),
	)
	boot := services.NewBootstrapper(factory)
	coordinator := services.NewCoordinator(
		clientID, boot, holder, hints, store.CredentialsStore(),
	)

	cli.SetVersion(version)
	cli.SetServices(config, coordinator)
	return cli.Execute()
}
