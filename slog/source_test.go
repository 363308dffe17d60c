package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/krxlist"
	"github.com/fwojciec/krxlist/mock"
	krxslog "github.com/fwojciec/krxlist/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSource_Listings(t *testing.T) {
	t.Parallel()

	t.Run("logs market and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingSource{
			ListingsFn: func(_ context.Context, market krxlist.Market) ([]*krxlist.Listing, error) {
				return []*krxlist.Listing{
					{Code: "035720", Name: "카카오", Market: market},
					{Code: "247540", Name: "에코프로비엠", Market: market},
				}, nil
			},
		}

		src := krxslog.NewLoggingSource(inner, logger)
		listings, err := src.Listings(context.Background(), krxlist.KOSDAQ)

		require.NoError(t, err)
		assert.Len(t, listings, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=listings")
		assert.Contains(t, output, "market=KOSDAQ")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ListingSource{
			ListingsFn: func(context.Context, krxlist.Market) ([]*krxlist.Listing, error) {
				return nil, errors.New("HTTP 503")
			},
		}

		_, err := krxslog.NewLoggingSource(inner, logger).Listings(context.Background(), krxlist.KOSPI)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "count=0")
		assert.Contains(t, output, "err=\"HTTP 503\"")
	})
}
