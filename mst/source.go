package mst

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/krxlist"
)

// DefaultBaseURL is where the vendor publishes the master file archives.
const DefaultBaseURL = "https://new.real.download.dws.co.kr/common/master"

// Ensure Source implements krxlist.ListingSource at compile time.
var _ krxlist.ListingSource = (*Source)(nil)

// Source implements krxlist.ListingSource by downloading a market's archive
// into Dir, extracting its master file and parsing it.
type Source struct {
	BaseURL    string
	Dir        string
	Downloader krxlist.Downloader
	Archives   krxlist.ArchiveExtractor
	Decoder    krxlist.LineDecoder
}

// URL returns the archive URL for market.
func (s *Source) URL(market krxlist.Market) string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/") + "/" + market.ArchiveName()
}

// Listings implements krxlist.ListingSource.
func (s *Source) Listings(ctx context.Context, market krxlist.Market) ([]*krxlist.Listing, error) {
	if err := market.Validate(); err != nil {
		return nil, err
	}
	if s.Dir == "" {
		return nil, krxlist.Errorf(krxlist.EINVALID, "source directory required")
	}

	archive, err := s.Downloader.Download(ctx, s.URL(market), filepath.Join(s.Dir, market.ArchiveName()))
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", market.ArchiveName(), err)
	}

	path, err := s.Archives.ExtractFile(archive.Path, market.MasterFileName(), s.Dir)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", market.MasterFileName(), err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := s.Decoder.DecodeLines(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", market.MasterFileName(), err)
	}

	return ExtractMarket(lines, market), nil
}
