// Package manifest parses and validates install manifests: small YAML files
// that declare the install options (wrapper name, target directory,
// interpreter, entry script) instead of passing them as flags. Manifests are
// validated against an embedded JSON schema before any value is used.
package manifest
