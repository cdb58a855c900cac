// Package config manages user-level settings stored at
// ~/.aligo-install/config.yaml. Recognized keys (name, target, python, entry)
// supply defaults for the matching install flags; an explicit flag always
// wins. Values can also come from ALIGO_INSTALL_* environment variables.
package config
