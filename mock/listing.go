package mock

import (
	"context"
	"io"

	"github.com/fwojciec/krxlist"
)

// Compile-time interface verification.
var (
	_ krxlist.ListingSource = (*ListingSource)(nil)
	_ krxlist.Emitter       = (*Emitter)(nil)
)

// ListingSource is a mock implementation of krxlist.ListingSource.
type ListingSource struct {
	ListingsFn func(ctx context.Context, market krxlist.Market) ([]*krxlist.Listing, error)
}

func (s *ListingSource) Listings(ctx context.Context, market krxlist.Market) ([]*krxlist.Listing, error) {
	return s.ListingsFn(ctx, market)
}

// Emitter is a mock implementation of krxlist.Emitter.
type Emitter struct {
	EmitFn      func(w io.Writer, listings []*krxlist.Listing) error
	EmitErrorFn func(w io.Writer, err error) error
}

func (e *Emitter) Emit(w io.Writer, listings []*krxlist.Listing) error {
	return e.EmitFn(w, listings)
}

func (e *Emitter) EmitError(w io.Writer, err error) error {
	return e.EmitErrorFn(w, err)
}
