package main

// Exit codes shared by all roster commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad path, unsupported extension)
	ExitDataError   = 3 // Data error (unparseable store file)
	ExitNotFound    = 4 // Record or column not found
)
