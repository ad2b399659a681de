package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/waypoint/pkg/shortcuts"
	"github.com/charmbracelet/lipgloss"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

var (
	keyStyle   = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	arrowStyle = pterm.NewStyle(pterm.FgGray)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"})
	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"})
)

// ListRenderer writes shortcut listings
type ListRenderer struct {
	out    io.Writer
	format Format
	styled bool
}

// NewListRenderer creates a renderer. styled only affects FormatText.
func NewListRenderer(out io.Writer, format Format, styled bool) *ListRenderer {
	return &ListRenderer{out: out, format: format, styled: styled}
}

// Render writes entries in the renderer's format
func (r *ListRenderer) Render(entries []shortcuts.Entry) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(entries)
	case FormatYAML:
		return r.renderYAML(entries)
	case FormatTOML:
		return r.renderTOML(entries)
	default:
		return r.renderText(entries)
	}
}

func (r *ListRenderer) renderText(entries []shortcuts.Entry) error {
	for _, e := range entries {
		var err error
		if r.styled {
			_, err = fmt.Fprintf(r.out, "%s %s %s\n", keyStyle.Sprint(e.Key), arrowStyle.Sprint("->"), e.Value)
		} else {
			_, err = fmt.Fprintf(r.out, "%s -> %s\n", e.Key, e.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ListRenderer) renderJSON(entries []shortcuts.Entry) error {
	if entries == nil {
		entries = []shortcuts.Entry{}
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(entries)
}

func (r *ListRenderer) renderYAML(entries []shortcuts.Entry) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(toMap(entries)); err != nil {
		return err
	}
	return encoder.Close()
}

func (r *ListRenderer) renderTOML(entries []shortcuts.Entry) error {
	data, err := toml.Marshal(toMap(entries))
	if err != nil {
		return err
	}
	_, err = r.out.Write(data)
	return err
}

func toMap(entries []shortcuts.Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}

// RenderError formats err for the terminal
func RenderError(err error, styled bool) string {
	msg := fmt.Sprintf("Error: %v", err)
	if styled {
		return errorStyle.Render(msg)
	}
	return msg
}

// RenderNotice formats an informational line such as a skipped add
func RenderNotice(msg string, styled bool) string {
	if styled {
		return noticeStyle.Render(msg)
	}
	return msg
}
