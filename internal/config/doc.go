// Package config loads, normalizes, and validates seqtext configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SEQTEXT_STORE_PATH. The Config type centralizes the special-token names,
// corpus loading options, output hardening switches, vocabulary store
// location, and logging knobs used by the CLI.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
