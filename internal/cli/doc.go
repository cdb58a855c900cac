// Package cli wires the cobra command tree: the root command performs the
// install, with doctor, version, and config subcommands alongside. Execute
// maps errors to process exit codes: 0 for success or help, 1 for validation
// and filesystem failures, 2 for unrecognized options or commands.
package cli
