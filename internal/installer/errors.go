package installer

import "errors"

// Terminal validation failures. All abort the current invocation; none are
// retried. Callers match them with errors.Is.
var (
	// ErrMissingEntryFile indicates the entry script does not exist or is
	// not a regular file.
	ErrMissingEntryFile = errors.New("entry file missing")

	// ErrMissingInterpreter indicates the interpreter binary is not
	// resolvable on the execution search path.
	ErrMissingInterpreter = errors.New("interpreter missing")

	// ErrTargetExists indicates a file already exists at the install path
	// and overwriting was not requested.
	ErrTargetExists = errors.New("target already exists")
)
