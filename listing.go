package krxlist

import "context"

// CodeLength is the length of a listing's short code.
const CodeLength = 6

// GroupCodeStock is the classification code of common equity (주권).
const GroupCodeStock = "ST"

// Listing represents a common equity listing extracted from a master file.
type Listing struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Market Market `json:"market"`
}

// Validate returns an error if the listing contains invalid fields.
func (l *Listing) Validate() error {
	if !IsListingCode(l.Code) {
		return Errorf(EINVALID, "listing code %q must be %d digits", l.Code, CodeLength)
	}
	if l.Name == "" {
		return Errorf(EINVALID, "listing name required")
	}
	return l.Market.Validate()
}

// IsListingCode reports whether s is exactly CodeLength ASCII digits.
func IsListingCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ListingSource produces the listings of a single market.
// Implementations hide downloading, archive extraction and decoding.
type ListingSource interface {
	Listings(ctx context.Context, market Market) ([]*Listing, error)
}
