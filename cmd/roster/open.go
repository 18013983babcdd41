package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/roster-cli/roster/internal/config"
	"github.com/roster-cli/roster/internal/store"
)

// resolveFile returns the active store file path: the --file flag, then
// ROSTER_FILE (a .env in the working directory is honored), then the
// global config default, then students.csv in the working directory.
func resolveFile() string {
	if dataFile != "" {
		return config.ExpandPath(dataFile)
	}

	_ = godotenv.Load()
	if path := os.Getenv("ROSTER_FILE"); path != "" {
		return config.ExpandPath(path)
	}

	if cfg, err := config.Load(); err == nil && cfg.DefaultFile != "" {
		return cfg.DefaultFile
	}

	return store.DefaultFilename
}

// openStore opens the resolved store file, creating it with the default
// schema when absent. Exits with a config error for an unsupported
// extension and a data error for unparseable contents.
func openStore() *store.Store {
	path := resolveFile()

	format, err := store.FormatForPath(path)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	s, err := store.Open(path, format)
	if err != nil {
		var parseErr *store.ParseError
		if errors.As(err, &parseErr) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "opening store: %v", err)
	}
	return s
}

// saveStore persists the store, exiting on write failure.
func saveStore(s *store.Store) {
	if err := s.Save(); err != nil {
		exitWithError(ExitError, "saving store: %v", err)
	}
}
