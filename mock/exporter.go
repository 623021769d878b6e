package mock

import (
	"context"
	"io"

	"github.com/fwojciec/shorts"
)

var (
	_ shorts.Exporter = (*Exporter)(nil)
	_ shorts.Encoder  = (*Encoder)(nil)
)

// Exporter is a mock implementation of shorts.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, run *shorts.Run, records []*shorts.Record) error
}

func (e *Exporter) Export(ctx context.Context, run *shorts.Run, records []*shorts.Record) error {
	return e.ExportFn(ctx, run, records)
}

// Encoder is a mock implementation of shorts.Encoder.
type Encoder struct {
	EncodeFn func(w io.Writer, records []*shorts.Record) error
}

func (e *Encoder) Encode(w io.Writer, records []*shorts.Record) error {
	return e.EncodeFn(w, records)
}
