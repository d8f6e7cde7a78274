// Package config loads, normalizes, and validates calculator configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// AQ_LOG_LEVEL. The Config type centralizes the segmentation, export, server
// and logging settings the CLI and HTTP host need.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical modes, and clear validation errors.
package config
