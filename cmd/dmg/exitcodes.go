package main

// Exit codes reported by every command.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config file, bad paths)
	ExitDataError   = 3 // Data error (no drugs, no readable sources, bad graph document)
	ExitOutputError = 4 // Output error (output directory or document not writable)
)
