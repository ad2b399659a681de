// Package expander turns text containing bracketed shortcut tokens such as
// [d] into its expanded form.
package expander

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/waypoint/pkg/errors"
	"github.com/arthur-debert/waypoint/pkg/shortcuts"
)

// EscapeCRLF is the built-in key that expands to a carriage return and line
// feed when the store does not define it.
const EscapeCRLF = "rn"

var builtins = map[string]string{
	EscapeCRLF: "\r\n",
}

// tokenPattern matches a bracketed run of zero or more word characters.
var tokenPattern = regexp.MustCompile(`\[` + shortcuts.WordClass + `*\]`)

// Resolve looks key up in m first and falls back to the built-in escapes.
func Resolve(key string, m shortcuts.Mapping) (string, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	v, ok := builtins[key]
	return v, ok
}

// Tokens returns the keys referenced by input, in order of appearance.
func Tokens(input string) []string {
	matches := tokenPattern.FindAllString(input, -1)
	keys := make([]string, 0, len(matches))
	for _, tok := range matches {
		keys = append(keys, tok[1:len(tok)-1])
	}
	return keys
}

// Expand replaces every token of input with its resolved value.
//
// Tokens are collected from the original input left to right; each one is
// then replaced everywhere it occurs in the output built so far, so a value
// that happens to contain a later token's text is replaced along with it.
// Values are otherwise inserted verbatim. If any token cannot be resolved the
// error names its key and no output is returned.
func Expand(input string, m shortcuts.Mapping) (string, error) {
	out := input
	for _, key := range Tokens(input) {
		value, ok := Resolve(key, m)
		if !ok {
			return "", errors.UnresolvedShortcut(key)
		}
		out = strings.ReplaceAll(out, "["+key+"]", value)
	}
	return out, nil
}

// JoinArgs rebuilds a shell-split command line: single spaces between
// arguments, none trailing.
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}
