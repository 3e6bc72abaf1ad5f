// Package domain holds the line classification rules and the workflow that
// feeds sources through them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/locstat/internal/adapter"
	"github.com/mouse-blink/locstat/internal/controller"
	"github.com/mouse-blink/locstat/internal/log"
	m "github.com/mouse-blink/locstat/internal/model"
)

// DefaultCacheSize is the number of stats entries kept when no size is given.
const DefaultCacheSize = 256

// AnalyzeArgs configures an Analyze run.
type AnalyzeArgs struct {
	// Paths to analyze. Empty means standard input.
	Paths   []m.Path
	Exclude []string
	Format  controller.Format
	Threads int
	// Save persists the report into Reports.
	Save    bool
	Reports m.Path
}

// InspectArgs configures an Inspect run.
type InspectArgs struct {
	// Path of the single source to inspect. Empty means standard input.
	Path m.Path
}

// ViewArgs configures a View run.
type ViewArgs struct {
	Reports m.Path
	Format  controller.Format
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
	View(args ViewArgs) error
}

// Option customizes a workflow.
type Option func(*workflow)

// WithLogger sets the workflow logger.
func WithLogger(logger *log.Logger) Option {
	return func(w *workflow) {
		w.log = logger
	}
}

// WithCacheSize sets the capacity of the stats cache.
func WithCacheSize(size int) Option {
	return func(w *workflow) {
		w.cacheSize = size
	}
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.ReportStore
	ui        controller.UI
	log       *log.Logger
	cacheSize int
	cache     *lru.Cache[string, m.Stats]
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	opts ...Option,
) Workflow {
	w := &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		ui:        ui,
		log:       log.Nop(),
		cacheSize: DefaultCacheSize,
	}

	for _, opt := range opts {
		opt(w)
	}

	cache, err := lru.New[string, m.Stats](w.cacheSize)
	if err != nil {
		w.log.Warn("stats cache disabled", "size", w.cacheSize, "error", err)
	} else {
		w.cache = cache
	}

	return w
}

// Analyze classifies every source under args.Paths and displays the report.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{m.StdinPath}
	}

	sources, err := w.fsAdapter.Get(paths, args.Exclude)
	if err != nil {
		return err
	}

	w.log.Debug("resolved sources", "roots", len(paths), "sources", len(sources))

	stats, err := w.classifyAll(ctx, sources, args.Threads)
	if err != nil {
		return err
	}

	report := m.NewReport(stats)

	if args.Save {
		if err := w.store.SaveReport(args.Reports, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}

		w.log.Info("report saved", "dir", args.Reports)
	}

	return w.ui.DisplayReport(report, args.Format)
}

// Inspect displays the classification of every line of a single source.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	path := args.Path
	if path == "" {
		path = m.StdinPath
	}

	sources, err := w.fsAdapter.Get([]m.Path{path}, nil)
	if err != nil {
		return err
	}

	if len(sources) != 1 {
		return fmt.Errorf("inspect expects a single source, %s resolved to %d", path, len(sources))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	source := sources[0]

	return w.ui.DisplayLines(source.Origin, NewClassifier(source.Text).Lines())
}

// View displays a previously saved report.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.store.LoadReport(args.Reports)
	if err != nil {
		if errors.Is(err, adapter.ErrNoReport) {
			return fmt.Errorf("%w; run with --save first", err)
		}

		return err
	}

	return w.ui.DisplayReport(report, args.Format)
}

// classifyAll computes stats for every source on at most threads goroutines.
// The result is sorted by path.
func (w *workflow) classifyAll(ctx context.Context, sources []m.Source, threads int) ([]m.Stats, error) {
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.Stats, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, source := range sources {
		if gctx.Err() != nil {
			break
		}

		i, source := i, source

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = w.classify(source)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

func (w *workflow) classify(source m.Source) m.Stats {
	if w.cache != nil && source.Hash != "" {
		if stats, ok := w.cache.Get(source.Hash); ok {
			w.log.Debug("stats cache hit", "path", source.Origin)

			stats.Path = source.Origin

			return stats
		}
	}

	start := time.Now()
	stats := NewClassifier(source.Text).Stats(source.Origin)

	w.log.Debug("classified", "path", source.Origin, "lines", stats.Total, "elapsed", time.Since(start))

	if w.cache != nil && source.Hash != "" {
		w.cache.Add(source.Hash, stats)
	}

	return stats
}
