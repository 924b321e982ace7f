// Package encode serializes captured output lines for propagation mode.
//
// An Encoder is selected once at startup from the configured format and
// receives lines in receipt order. Adding a format means adding an
// Encoder implementation here; the capture pipeline never changes.
package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/comux/internal/errors"
	"github.com/Iron-Ham/comux/internal/output"
)

// Format names accepted by New.
const (
	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encoder writes one record per captured output line. Every record
// reaches the writer before EncodeLine returns: a long-running child's
// output streams out as it is captured, not when the run ends.
// Implementations are not safe for concurrent use; the propagation
// consumer is a single goroutine receiving lines in arrival order.
type Encoder interface {
	// EncodeLine writes the record for one captured line.
	EncodeLine(line output.Line) error

	// Flush forces out anything an implementation buffers. Called when
	// the run ends; the built-in encoders write through, so for them it
	// is a no-op.
	Flush() error
}

// New returns the Encoder for the named format, writing to w.
// Returns a configuration error for unrecognized format names.
func New(format string, w io.Writer) (Encoder, error) {
	switch format {
	case FormatRaw, "":
		return &rawEncoder{w: w}, nil
	case FormatJSON:
		return &jsonEncoder{enc: json.NewEncoder(w)}, nil
	case FormatYAML:
		return &yamlEncoder{w: w}, nil
	default:
		return nil, errors.NewConfigError(fmt.Sprintf("output format %q", format), errors.ErrUnknownFormat)
	}
}

// rawEncoder passes line content through unchanged, one line per record,
// written through immediately.
type rawEncoder struct {
	w io.Writer
}

func (e *rawEncoder) EncodeLine(line output.Line) error {
	// One Write per record keeps lines intact for downstream consumers.
	_, err := io.WriteString(e.w, line.Text+"\n")
	return err
}

func (e *rawEncoder) Flush() error {
	return nil
}

// jsonEncoder emits one JSON object per line (JSON Lines framing).
type jsonEncoder struct {
	enc *json.Encoder
}

func (e *jsonEncoder) EncodeLine(line output.Line) error {
	return e.enc.Encode(line)
}

func (e *jsonEncoder) Flush() error {
	return nil
}

// yamlEncoder emits one YAML document per line, separated by "---",
// written through immediately.
type yamlEncoder struct {
	w io.Writer
}

func (e *yamlEncoder) EncodeLine(line output.Line) error {
	data, err := yaml.Marshal(line)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append([]byte("---\n"), data...))
	return err
}

func (e *yamlEncoder) Flush() error {
	return nil
}
