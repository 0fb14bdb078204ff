package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/wordgrid/builder"
	"github.com/katalvlaran/wordgrid/config"
	"github.com/katalvlaran/wordgrid/ctxlog"
	"github.com/katalvlaran/wordgrid/dfs"
	"github.com/katalvlaran/wordgrid/dictionary"
	"github.com/katalvlaran/wordgrid/gridgraph"
	"github.com/katalvlaran/wordgrid/report"
)

// App runs one word search.
type App struct {
	outW   io.Writer
	cfg    *config.Config
	logger *slog.Logger
	sink   report.Sink
}

// Result summarizes a finished run.
type Result struct {
	Grid       *gridgraph.LetterGrid
	Paths      int      // candidates emitted by the enumerator, duplicates included
	Candidates []string // distinct lowercased candidates
	Words      []string // ordered dictionary matches
	Elapsed    time.Duration
}

// NewApp builds an App that prints progress to outW and logs to logW.
// cfg must already be validated.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	return &App{
		outW:   outW,
		cfg:    cfg,
		logger: newLogger(cfg, logW),
		sink:   newSink(cfg),
	}
}

// newSink picks the configured destinations.
func newSink(cfg *config.Config) report.Sink {
	var sinks report.MultiSink
	if cfg.OutputDir != "" {
		sinks = append(sinks, report.DirSink{Dir: cfg.OutputDir})
	}
	if cfg.PocketBaseURL != "" {
		sinks = append(sinks, report.NewPocketBaseSink(
			cfg.PocketBaseURL, cfg.PocketBaseEmail, cfg.PocketBasePassword, cfg.PocketBaseCollection))
	}
	if len(sinks) == 1 {
		return sinks[0]
	}
	return sinks
}

// Run executes the pipeline. Dictionary and sink failures are returned as-is
// (wrapped); finding no words is not an error.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	tag, err := report.ParseLocale(a.cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("app: locale: %w", err)
	}
	rp := report.New(tag)

	// 1. Grid
	grid, err := a.buildGrid(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.outW, "Using grid:\n%s", grid)

	// 2. Enumerate and normalize
	start := time.Now()
	raw, err := dfs.Enumerate(grid, a.searchOptions()...)
	if err != nil {
		return nil, fmt.Errorf("app: enumerate: %w", err)
	}
	candidates := rp.Candidates(raw)
	elapsed := time.Since(start)
	fmt.Fprintf(a.outW, "Algorithm took: %d ms\n", elapsed.Milliseconds())
	logger.Info("Enumeration complete.", "paths", len(raw), "distinct", len(candidates), "elapsed", elapsed)

	if a.cfg.WriteAll {
		if err = a.publish(ctx, rp, config.AllCombinationsFile, candidates); err != nil {
			return nil, err
		}
	}

	// 3. Dictionary
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	enc, err := dictionary.ParseEncoding(a.cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	loadStart := time.Now()
	dict, err := dictionary.Load(a.cfg.DictionaryPath, dictionary.WithEncoding(enc))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	logger.Debug("Dictionary loaded.", "path", a.cfg.DictionaryPath, "words", dict.Len(), "elapsed", time.Since(loadStart))

	// 4. Intersect and report
	words := rp.Order(report.Intersect(candidates, dict))
	fmt.Fprintf(a.outW, "Found %d words\n", len(words))
	logger.Info("Dictionary matches.", "count", len(words))

	if a.cfg.WriteValid {
		if err = a.publish(ctx, rp, config.AllValidFile, words); err != nil {
			return nil, err
		}
	}

	return &Result{
		Grid:       grid,
		Paths:      len(raw),
		Candidates: candidates,
		Words:      words,
		Elapsed:    elapsed,
	}, nil
}

func (a *App) buildGrid(ctx context.Context) (*gridgraph.LetterGrid, error) {
	logger := ctxlog.FromContext(ctxlog.With(ctx, "stage", "grid"))
	opts := []builder.BuilderOption{builder.WithConnectivity(a.cfg.Conn())}

	if len(a.cfg.GridRows) > 0 {
		logger.Debug("Using literal grid.", "rows", len(a.cfg.GridRows))
		g, err := builder.Literal(a.cfg.GridRows, opts...)
		if err != nil {
			return nil, fmt.Errorf("app: grid: %w", err)
		}
		return g, nil
	}

	if a.cfg.Seed != 0 {
		opts = append(opts, builder.WithSeed(a.cfg.Seed))
	}
	if a.cfg.Charset != "" {
		opts = append(opts, builder.WithCharset(a.cfg.Charset))
	}
	logger.Debug("Generating random grid.", "rows", a.cfg.Rows, "cols", a.cfg.Cols, "seed", a.cfg.Seed)
	g, err := builder.RandomGrid(a.cfg.Rows, a.cfg.Cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("app: grid: %w", err)
	}
	return g, nil
}

func (a *App) searchOptions() []dfs.Option {
	opts := []dfs.Option{dfs.WithMinLength(a.cfg.MinLength)}
	if a.cfg.MaxLength > 0 {
		opts = append(opts, dfs.WithMaxLength(a.cfg.MaxLength))
	}
	return opts
}

func (a *App) publish(ctx context.Context, rp *report.Reporter, name string, words []string) error {
	ctx = ctxlog.With(ctx, "list", name)
	start := time.Now()
	if err := rp.Publish(ctx, a.sink, name, words); err != nil {
		return fmt.Errorf("app: persist %s: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("List persisted.", "count", len(words), "elapsed", time.Since(start))
	return nil
}
