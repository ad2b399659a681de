// Package shortcuts owns waypoint's persistent key -> value table.
//
// The table lives in a flat text file, one `key = value` entry per line.
// Every invocation loads the whole file into a Mapping, optionally applies a
// single mutation, and persists the result with a full atomic rewrite.
// Mappings are plain values: operations return a new Mapping rather than
// mutating shared state, and there is no process-wide store object.
//
// Lines that do not have the `key = value` shape are ignored on load and
// disappear on the next rewrite. Adding a key that already exists is a no-op:
// the first value written wins.
package shortcuts
