// Package config handles configuration management for waypoint.
// It layers embedded TOML defaults, optional TOML settings files and
// WAYPOINT_* environment variables.
package config
