// Package platform provides cross-platform filesystem and search-path helpers:
// permission management, user-local bin directory resolution, and PATH
// membership checks. On Windows chmod is a no-op because Windows does not
// support Unix-style permission bits.
package platform
