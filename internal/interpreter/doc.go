// Package interpreter resolves the interpreter binary that generated wrappers
// invoke. It locates the binary on the search path, probes its version by
// running `<bin> --version`, and evaluates semver range constraints for the
// optional minimum-version gate.
package interpreter
