// Package json implements krxlist.Emitter with encoding/json.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/krxlist"
)

// Ensure Emitter implements krxlist.Emitter at compile time.
var _ krxlist.Emitter = (*Emitter)(nil)

// Emitter writes listings as a JSON array and failures as a JSON object.
// Output is UTF-8 with no HTML escaping, one value per call.
type Emitter struct {
	indent string
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithIndent pretty-prints output using indent for each level.
func WithIndent(indent string) Option {
	return func(e *Emitter) {
		e.indent = indent
	}
}

// NewEmitter creates a new Emitter.
func NewEmitter(opts ...Option) *Emitter {
	e := &Emitter{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// errorReport is the failure object written by EmitError.
type errorReport struct {
	Error string `json:"error"`
}

// Emit writes listings as a single JSON array. A nil slice is written as [].
func (e *Emitter) Emit(w io.Writer, listings []*krxlist.Listing) error {
	if listings == nil {
		listings = []*krxlist.Listing{}
	}
	return e.encode(w, listings)
}

// EmitError writes {"error": "<message>"} for err.
func (e *Emitter) EmitError(w io.Writer, err error) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return e.encode(w, errorReport{Error: msg})
}

func (e *Emitter) encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.indent != "" {
		enc.SetIndent("", e.indent)
	}
	return enc.Encode(v)
}
