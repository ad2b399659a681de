package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the --list output format
type Format int

const (
	// FormatText renders one `key -> value` line per shortcut
	FormatText Format = iota
	// FormatJSON renders a JSON array of {key, value} objects
	FormatJSON
	// FormatYAML renders a YAML mapping
	FormatYAML
	// FormatTOML renders a TOML table
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "plain", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", s)
	}
}

// Formats lists the accepted format names
func Formats() []string {
	return []string{FormatText.String(), FormatJSON.String(), FormatYAML.String(), FormatTOML.String()}
}

// SupportsColor reports whether output is a terminal that should get styled text
func SupportsColor(output *os.File) bool {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// IsStyledWriter reports whether w is a colour terminal
func IsStyledWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && SupportsColor(f)
}
