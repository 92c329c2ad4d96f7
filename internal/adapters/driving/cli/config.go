package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cadence-labs/cadence-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cadence configuration",
	Long: `View and change cadence configuration.

Keys use dot notation matching the TOML layout, for example:
  google.client_id
  google.client_secret`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

When the value is omitted for a secret key, it is read from the terminal
without echo:
  cadence config set google.client_secret`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Configuration")
	cmd.Println("=============")

	clientID := configStore.GetString(file.KeyClientID)
	if clientID == "" {
		cmd.Println("  google.client_id: (not set)")
	} else {
		cmd.Printf("  google.client_id: %s\n", clientID)
	}

	if configStore.GetString(file.KeyClientSecret) != "" {
		cmd.Println("  google.client_secret: (set)")
	} else {
		cmd.Println("  google.client_secret: (not set)")
	}

	cmd.Println()
	cmd.Printf("File: %s\n", configStore.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]
	if isSecretKey(key) {
		if configStore.GetString(key) != "" {
			cmd.Println("(set)")
		} else {
			cmd.Println("(not set)")
		}
		return nil
	}

	value, ok := configStore.Get(key)
	if !ok {
		return fmt.Errorf("key not set: %s", key)
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key := args[0]

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if !isSecretKey(key) {
			return errors.New("a value is required for this key")
		}
		cmd.Print("Value: ")
		value = readPassword()
		cmd.Println()
		if value == "" {
			return errors.New("a value is required")
		}
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	if key == file.KeyClientID {
		cmd.Println("Restart any running cadence sessions to pick up the new client ID.")
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// isSecretKey reports whether a key's value should never be echoed.
func isSecretKey(key string) bool {
	return key == file.KeyClientSecret || strings.HasSuffix(key, "_secret")
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
