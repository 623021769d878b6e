// Package csv encodes shorts records as comma-separated values.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fwojciec/shorts"
)

// Ensure Encoder implements shorts.Encoder at compile time.
var _ shorts.Encoder = (*Encoder)(nil)

// Encoder writes a header row taken from the first record's field names
// followed by one row per record. Rows end with CRLF.
type Encoder struct{}

// NewEncoder returns a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes records to w. No records produce no output at all, not
// even a header.
func (e *Encoder) Encode(w io.Writer, records []*shorts.Record) error {
	if len(records) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	header := make([]string, 0, 6)
	for _, f := range records[0].Fields() {
		header = append(header, f.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, rec := range records {
		fields := rec.Fields()
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = fmt.Sprint(f.Value)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
