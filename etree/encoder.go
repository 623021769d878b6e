// Package etree encodes shorts records as an XML document using
// github.com/beevik/etree.
package etree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/shorts"
)

// Element names of the document.
const (
	RootElement   = "Shorts"
	RecordElement = "Short"
)

// Ensure Encoder implements shorts.Encoder at compile time.
var _ shorts.Encoder = (*Encoder)(nil)

// Encoder writes records as <Shorts><Short>...</Short></Shorts>. Child
// element names are the record field names with spaces removed.
type Encoder struct {
	indent int
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithIndent indents nested elements by n spaces.
func WithIndent(n int) Option {
	return func(e *Encoder) {
		e.indent = n
	}
}

// NewEncoder returns an Encoder. By default the document is written
// without indentation: the declaration, a newline, then the root element
// on a single line.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{indent: etree.NoIndent}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes an XML declaration followed by the document.
func (e *Encoder) Encode(w io.Writer, records []*shorts.Record) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	if e.indent == etree.NoIndent {
		doc.CreateText("\n")
	}

	root := doc.CreateElement(RootElement)
	for _, rec := range records {
		item := root.CreateElement(RecordElement)
		for _, f := range rec.Fields() {
			item.CreateElement(ElementName(f.Name)).SetText(fmt.Sprint(f.Value))
		}
	}

	if e.indent != etree.NoIndent {
		doc.Indent(e.indent)
	}
	_, err := doc.WriteTo(w)
	return err
}

// ElementName converts a field name to an element name.
func ElementName(field string) string {
	return strings.ReplaceAll(field, " ", "")
}
