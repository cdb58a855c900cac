// Package installer materializes the executable wrapper that forwards
// invocations to the interpreted aligo entry point. It resolves install
// options against built-in defaults, validates the environment (entry file,
// interpreter), and writes a small shell shim at <target>/<name> with the
// executable bit set. The pipeline is a linear validate-then-act sequence
// with early termination on the first failure; nothing on disk is touched
// before every validation has passed.
package installer
