package cli

// Short messages (one-liners)
const (
	MsgRootShort = "Expand bracketed shortcuts and copy the result to the clipboard"
	MsgRootLong  = `waypoint expands shortcuts written as [key] into their stored values and
places the result on the clipboard. All arguments are joined with single
spaces before expansion, so

  waypoint cd [d]

copies "cd C:\Users\me\Desktop" when the shortcut d is defined. The built-in
token [rn] expands to a CRLF line break unless a shortcut named rn exists.

Shortcuts live in a plain text file (one "key = value" per line) next to the
executable; see --path.`

	MsgRootExample = `  waypoint --add d 'C:\Users\me\Desktop'
  waypoint --list
  waypoint cd [d]
  waypoint --rm d`

	// Status messages
	MsgAddSkipped = "Shortcut [%s] already exists with value %q; keeping it."

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagPath      = "Print the location of the shortcut file"
	MsgFlagAdd       = "Add a shortcut: --add <key> <value>; an existing key is left unchanged"
	MsgFlagList      = "List all shortcuts as key -> value"
	MsgFlagRemove    = "Remove a shortcut: --rm <key>"
	MsgFlagFormat    = "Output format for --list: text, json, yaml or toml"
	MsgFlagPrint     = "Also print the expansion to stdout"
	MsgFlagDryRun    = "Print the expansion without touching the clipboard"
	MsgFlagStore     = "Use this shortcut file instead of the one beside the executable"
	MsgFlagClipboard = "Clipboard backend: system, osc52 or stdout"

	// Error messages
	MsgErrNoInput     = "text to expand"
	MsgErrTooManyArgs = "%s takes %s"
	MsgErrFormat      = "invalid list format"
)
