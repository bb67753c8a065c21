package report

import (
	"io"

	j "github.com/goccy/go-json"
)

// JSONEncoder writes one indented JSON document per Encode call.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder { return &JSONEncoder{w: w} }

func (e *JSONEncoder) Encode(v any) error {
	enc := j.NewEncoder(e.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// LineEncoder writes one compact JSON document per line (JSON Lines), for
// event streams.
type LineEncoder struct {
	enc *j.Encoder
}

func NewLineEncoder(w io.Writer) *LineEncoder { return &LineEncoder{enc: j.NewEncoder(w)} }

func (e *LineEncoder) Encode(v any) error { return e.enc.Encode(v) }
