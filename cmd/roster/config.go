package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roster-cli/roster/internal/config"
	"github.com/roster-cli/roster/internal/store"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set values in the global configuration file.

Usage:
  roster config                                # Show all config
  roster config default-file                   # Get specific value
  roster config default-file ~/students.json   # Set value

Keys:
  default-file  Data file used when --file and ROSTER_FILE are unset`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("default-file: %s\n", cfg.DefaultFile)
			fmt.Printf("config path:  %s\n", config.Path())
		} else {
			outputJSON(ConfigResponse{
				DefaultFile: cfg.DefaultFile,
				Path:        config.Path(),
			})
		}
		return nil
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		switch key {
		case "default-file":
			if humanOutput {
				fmt.Println(cfg.DefaultFile)
			} else {
				outputJSON(map[string]string{"default_file": cfg.DefaultFile})
			}
		default:
			exitWithError(ExitError, "unknown configuration key: %s", args[0])
		}
		return nil
	}

	// Two args: set value
	if err := setConfigValue(cfg, key, args[1]); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if err := cfg.Save(); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", args[0], args[1])
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  args[1],
		})
	}
	return nil
}

// setConfigValue applies a single key/value assignment to cfg. The key
// must already be normalized.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "default-file":
		expanded := config.ExpandPath(value)
		if _, err := store.FormatForPath(expanded); err != nil {
			return err
		}
		cfg.DefaultFile = expanded
		return nil
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
}

// normalizeKey converts key formats (default_file, DEFAULT-FILE) to a
// consistent format.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
