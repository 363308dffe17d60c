package mst

import (
	"context"
	"fmt"

	"github.com/fwojciec/krxlist"
)

// Collect fetches the listings of each market in turn and concatenates
// them in market order. The first failure aborts the collection and no
// partial result is returned.
func Collect(ctx context.Context, src krxlist.ListingSource, markets []krxlist.Market) ([]*krxlist.Listing, error) {
	all := []*krxlist.Listing{}
	for _, market := range markets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		listings, err := src.Listings(ctx, market)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", market, err)
		}
		all = append(all, listings...)
	}
	return all, nil
}
