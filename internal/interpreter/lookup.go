package interpreter

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotFound indicates the interpreter binary is not resolvable on PATH.
var ErrNotFound = errors.New("interpreter not found")

// Resolve locates the interpreter binary on the execution search path and
// returns its absolute path. Names containing a path separator are resolved
// relative to the working directory, matching exec.LookPath semantics.
func Resolve(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not on PATH", ErrNotFound, name)
	}
	return path, nil
}
