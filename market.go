package krxlist

import "strings"

// Market identifies a stock market with its own master file.
type Market string

// Market constants. Order matters: listings are emitted KOSPI first.
const (
	KOSPI  Market = "KOSPI"
	KOSDAQ Market = "KOSDAQ"
)

// Markets lists the supported markets in emission order.
var Markets = []Market{KOSPI, KOSDAQ}

// ParseMarket returns the market named by s, ignoring case.
func ParseMarket(s string) (Market, error) {
	m := Market(strings.ToUpper(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate returns an error if m is not a supported market.
func (m Market) Validate() error {
	switch m {
	case KOSPI, KOSDAQ:
		return nil
	}
	return Errorf(EINVALID, "unknown market %q", string(m))
}

// TrailingWidth returns the width in characters of the fixed classification
// segment at the end of each master file line, line terminator included.
// Returns 0 for an unknown market.
func (m Market) TrailingWidth() int {
	switch m {
	case KOSPI:
		return 228
	case KOSDAQ:
		return 222
	}
	return 0
}

// ArchiveName returns the file name of the published archive, e.g. kospi_code.mst.zip.
func (m Market) ArchiveName() string {
	return m.MasterFileName() + ".zip"
}

// MasterFileName returns the file name of the master file inside the archive.
func (m Market) MasterFileName() string {
	return strings.ToLower(string(m)) + "_code.mst"
}
