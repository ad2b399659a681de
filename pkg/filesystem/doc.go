// Package filesystem provides filesystem implementations for waypoint.
//
// This package contains the FS interface the shortcut store writes through,
// an OS-backed implementation, and an afero-backed one used by tests.
package filesystem
