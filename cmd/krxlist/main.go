package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/krxlist"
	"github.com/fwojciec/krxlist/fs"
	krxhttp "github.com/fwojciec/krxlist/http"
	krxjson "github.com/fwojciec/krxlist/json"
	"github.com/fwojciec/krxlist/korean"
	"github.com/fwojciec/krxlist/mst"
	krxslog "github.com/fwojciec/krxlist/slog"
	"github.com/fwojciec/krxlist/zip"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Parent of the run's temporary workspace. Empty uses os.TempDir().
	TempDir string

	// Writes the result on success and the error report on failure.
	Emitter krxlist.Emitter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Emitter: krxjson.NewEmitter(),
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL  string        `name:"base-url" default:"${base_url}" help:"Base URL of the master file archives"`
	Markets  []string      `name:"market" help:"Markets to fetch, in output order (default: KOSPI,KOSDAQ)"`
	Timeout  time.Duration `short:"t" default:"60s" help:"Download timeout per archive"`
	Insecure bool          `help:"Skip TLS certificate verification"`
	Verbose  bool          `short:"v" help:"Log progress to stderr"`
}

// Run executes the CLI with the given arguments. Any failure is reported to
// stderr as a JSON error object and returned; nothing is written to stdout.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("krxlist"),
		kong.Description("Print KOSPI and KOSDAQ common stock listings as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"base_url": mst.DefaultBaseURL},
	)
	if err != nil {
		return m.fail(stderr, fmt.Errorf("failed to create parser: %w", err))
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" || arg == "help" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return m.fail(stderr, err)
	}

	markets := krxlist.Markets
	if len(cli.Markets) > 0 {
		markets = make([]krxlist.Market, 0, len(cli.Markets))
	}
	for _, s := range cli.Markets {
		market, err := krxlist.ParseMarket(s)
		if err != nil {
			return m.fail(stderr, err)
		}
		markets = append(markets, market)
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	ws := fs.NewWorkspace(m.TempDir, "krxlist-*")
	if err := ws.Open(); err != nil {
		return m.fail(stderr, fmt.Errorf("failed to create workspace: %w", err))
	}
	defer ws.Close()

	opts := []krxhttp.Option{krxhttp.WithTimeout(cli.Timeout)}
	if cli.Insecure {
		opts = append(opts, krxhttp.WithInsecureSkipVerify())
	}

	// Wire dependencies
	var source krxlist.ListingSource = &mst.Source{
		BaseURL:    cli.BaseURL,
		Dir:        ws.Dir(),
		Downloader: krxslog.NewLoggingDownloader(krxhttp.NewDownloader(opts...), logger),
		Archives:   zip.NewExtractor(),
		Decoder:    korean.NewDecoder(),
	}
	source = krxslog.NewLoggingSource(source, logger)

	listings, err := mst.Collect(ctx, source, markets)
	if err != nil {
		return m.fail(stderr, err)
	}

	logger.Info("done", "count", len(listings))
	if err := m.Emitter.Emit(stdout, listings); err != nil {
		return m.fail(stderr, err)
	}
	return nil
}

func (m *Main) fail(stderr io.Writer, err error) error {
	_ = m.Emitter.EmitError(stderr, err)
	return err
}
