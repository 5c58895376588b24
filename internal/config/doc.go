// Package config loads the destiny matrix settings from defaults, an optional
// config.yaml and DESTINY_* environment variables, and validates the result
// before any server or CLI component is built from it.
package config
