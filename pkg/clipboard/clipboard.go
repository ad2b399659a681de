// Package clipboard provides the sinks expanded text is delivered to.
package clipboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/waypoint/pkg/errors"
	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Backend names accepted by New.
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendStdout = "stdout"
)

// Sink makes a string the active clipboard content.
type Sink interface {
	Write(text string) error
}

// New returns the sink for backend. stdout receives the text itself for the
// stdout backend; stderr receives the osc52 escape sequence so the text never
// ends up in a pipe.
func New(backend string, stdout, stderr io.Writer) (Sink, error) {
	switch strings.ToLower(backend) {
	case "", BackendSystem:
		return System{}, nil
	case BackendOSC52:
		return OSC52{Out: stderr}, nil
	case BackendStdout:
		return Writer{Out: stdout}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigValid, "unknown clipboard backend %q", backend).
			WithDetail("backend", backend)
	}
}

// System writes to the operating system clipboard.
type System struct{}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return errors.New(errors.ErrClipboard, "no system clipboard available").
			WithDetail("backend", BackendSystem)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrClipboard, "failed to write clipboard").
			WithDetail("backend", BackendSystem)
	}
	return nil
}

// OSC52 asks the terminal to set the clipboard through an OSC 52 escape
// sequence, which also works over SSH.
type OSC52 struct {
	Out io.Writer
}

func (o OSC52) Write(text string) error {
	if _, err := osc52.New(text).WriteTo(o.Out); err != nil {
		return errors.Wrap(err, errors.ErrClipboard, "failed to write OSC 52 sequence").
			WithDetail("backend", BackendOSC52)
	}
	return nil
}

// Writer prints the text followed by a newline.
type Writer struct {
	Out io.Writer
}

func (w Writer) Write(text string) error {
	if _, err := fmt.Fprintln(w.Out, text); err != nil {
		return errors.Wrap(err, errors.ErrClipboard, "failed to write output").
			WithDetail("backend", BackendStdout)
	}
	return nil
}

// Recorder keeps every write in memory. Tests use it in place of the system
// clipboard.
type Recorder struct {
	Writes []string
	Err    error
}

func (r *Recorder) Write(text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Writes = append(r.Writes, text)
	return nil
}
