package shortcuts

import (
	"regexp"
	"sort"
	"strings"
)

// WordClass matches one word character: letters and letter numbers such as
// Ⅻ, combining marks, decimal digits, connector punctuation such as the
// underscore, and the zero width joiner and non-joiner.
const WordClass = `[\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}\x{200C}\x{200D}]`

// Separator sits between key and value on every line of the backing file.
const Separator = " = "

var (
	keyPattern  = regexp.MustCompile(`^` + WordClass + `+$`)
	linePattern = regexp.MustCompile(`^(` + WordClass + `+)` + Separator + `(.*)$`)
)

// Entry is a single shortcut.
type Entry struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Mapping is the in-memory form of the store.
type Mapping map[string]string

// ValidKey reports whether key is a non-empty run of word characters.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// ValidValue reports whether value fits on a single line of the backing file.
func ValidValue(value string) bool {
	return !strings.ContainsAny(value, "\r\n")
}

// Parse reads the backing file format. Lines that are not `key = value` are
// skipped without error.
func Parse(data []byte) Mapping {
	m := Mapping{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		match := linePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		m[match[1]] = match[2]
	}
	return m
}

// Serialize renders m in the canonical file form, sorted by key.
func Serialize(m Mapping) []byte {
	var b strings.Builder
	for _, e := range List(m) {
		b.WriteString(e.Key)
		b.WriteString(Separator)
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// List enumerates m sorted by key.
func List(m Mapping) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Has reports whether key is defined.
func (m Mapping) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Clone returns an independent copy of m.
func (m Mapping) Clone() Mapping {
	c := make(Mapping, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
