// Package json encodes shorts records as a JSON array.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/shorts"
)

// Ensure Encoder implements shorts.Encoder at compile time.
var _ shorts.Encoder = (*Encoder)(nil)

// Indent is the per-level indentation of the output.
const Indent = "    "

// Encoder writes records as an indented JSON array of objects whose keys
// follow the record field order. Non-ASCII text and HTML characters are
// written as is.
type Encoder struct{}

// NewEncoder returns a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes records to w. A nil slice is written as [].
func (e *Encoder) Encode(w io.Writer, records []*shorts.Record) error {
	if records == nil {
		records = []*shorts.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
