// Package http provides an HTTP-based implementation of krxlist.Downloader.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/krxlist"
)

// DefaultTimeout is the default timeout for a whole download.
const DefaultTimeout = 60 * time.Second

// Ensure Downloader implements krxlist.Downloader at compile time.
var _ krxlist.Downloader = (*Downloader)(nil)

// Downloader retrieves files over HTTP and writes them to local disk.
type Downloader struct {
	client   *http.Client
	timeout  time.Duration
	insecure bool
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (60s) if not specified. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify() Option {
	return func(dl *Downloader) {
		dl.insecure = true
	}
}

// WithClient uses c instead of a client built from the other options.
func WithClient(c *http.Client) Option {
	return func(dl *Downloader) {
		dl.client = c
	}
}

// NewDownloader creates a new HTTP-based Downloader.
func NewDownloader(opts ...Option) *Downloader {
	dl := &Downloader{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(dl)
	}

	if dl.client == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if dl.insecure {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		dl.client = &http.Client{
			Timeout:   dl.timeout,
			Transport: transport,
		}
	}

	return dl
}

// Download fetches url and writes the response body to dst.
// On failure no file is left at dst.
func (dl *Downloader) Download(ctx context.Context, url, dst string) (_ *krxlist.Archive, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := dl.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	f, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	h := xxhash.New()
	n, err := io.Copy(io.MultiWriter(f, h), resp.Body)
	if err != nil {
		return nil, err
	}

	return &krxlist.Archive{
		Path:     dst,
		Size:     n,
		Checksum: fmt.Sprintf("%x", h.Sum64()),
	}, nil
}
