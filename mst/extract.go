// Package mst parses the fixed-width securities master files.
//
// A master file line is a variable-width leading segment holding the short
// code and the name, followed by a market-specific fixed-width trailing
// segment of classification metadata. Offsets are character positions in
// the decoded line.
package mst

import (
	"strings"

	"github.com/fwojciec/krxlist"
)

// Layout of the leading segment.
const (
	// CodeWidth is the width of the short code field.
	CodeWidth = 9

	// MinLeadingWidth is where the name field starts. A line whose leading
	// segment is shorter than this cannot hold a record.
	MinLeadingWidth = 21

	// GroupCodeWidth is the width of the group code at the start of the
	// trailing segment.
	GroupCodeWidth = 2
)

// ExtractMarket is Extract with the market's own trailing width.
func ExtractMarket(lines []string, market krxlist.Market) []*krxlist.Listing {
	return Extract(lines, market.TrailingWidth(), market)
}

// Extract returns the common equity listings found in lines, in input order.
// Lines that are truncated or do not describe a common equity listing are
// skipped without error. The result is never nil.
func Extract(lines []string, trailingWidth int, market krxlist.Market) []*krxlist.Listing {
	listings := make([]*krxlist.Listing, 0, len(lines))
	for _, line := range lines {
		if l, ok := parseLine(line, trailingWidth); ok {
			l.Market = market
			listings = append(listings, l)
		}
	}
	return listings
}

func parseLine(line string, trailingWidth int) (*krxlist.Listing, bool) {
	if trailingWidth < GroupCodeWidth {
		return nil, false
	}

	runes := []rune(line)
	if len(runes) < trailingWidth+MinLeadingWidth {
		return nil, false
	}

	split := len(runes) - trailingWidth
	leading, trailing := runes[:split], runes[split:]

	code := strings.TrimSpace(string(leading[:CodeWidth]))
	name := strings.TrimSpace(string(leading[MinLeadingWidth:]))
	group := string(trailing[:GroupCodeWidth])

	if !krxlist.IsListingCode(code) || name == "" || group != krxlist.GroupCodeStock {
		return nil, false
	}
	return &krxlist.Listing{Code: code, Name: name}, true
}
