// Package batch drives generation of statement fixtures: each unit of
// work synthesizes one statement, renders it, writes the document, and
// optionally persists its ground-truth record. Units are fully
// independent and run on a worker pool; each carries its own random
// stream derived from the base seed and the statement index.
package batch

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"synstatement/internal/entity"
	"synstatement/internal/logger"
	"synstatement/internal/render"
	"synstatement/internal/statement"
)

// DefaultWorkers is the worker-pool size used when none is configured.
const DefaultWorkers = 4

// Options configures a batch run.
type Options struct {
	// OutputDir receives the rendered documents. Created if absent.
	OutputDir string

	// Count is the number of statements to generate.
	Count int

	// GroundTruth enables writing one ground-truth JSON file per
	// successfully rendered statement.
	GroundTruth bool

	// Manifest enables writing a manifest.xlsx summary of the run.
	Manifest bool

	// Workers is the worker-pool size. Values below one fall back to
	// DefaultWorkers.
	Workers int

	// TransactionCount is the per-statement transaction count. Values
	// below one use the statement builder's default.
	TransactionCount int

	// Seed derives the per-statement random streams. Zero means
	// time-derived.
	Seed int64

	// Now overrides the generation clock, for tests. Zero means the
	// wall clock.
	Now time.Time

	// OpenAIKey enables the generative company source when non-empty.
	OpenAIKey string

	// OpenAIModel is the chat model used by the generative source.
	OpenAIModel string

	// NewSource overrides company-source construction for one unit,
	// for tests. The pool argument is the unit's own static pool.
	NewSource func(pool *entity.StaticPool) entity.CompanySource

	// Render overrides the renderer, for tests. Nil means render.Render.
	Render render.Func
}

// Failure records one statement that did not complete.
type Failure struct {
	Index int
	Path  string
	Err   error
}

// Result summarizes a batch run. Generated holds the paths of all
// successfully rendered documents in index order.
type Result struct {
	RunID        string
	Generated    []string
	Failures     []Failure
	ManifestPath string
	Duration     time.Duration
}

// Runner executes batch runs.
type Runner struct {
	opts      Options
	newSource func(pool *entity.StaticPool) entity.CompanySource
	renderFn  render.Func
	log       zerolog.Logger
}

// NewRunner creates a runner for the given options.
func NewRunner(opts Options) *Runner {
	renderFn := opts.Render
	if renderFn == nil {
		renderFn = render.Render
	}

	newSource := opts.NewSource
	if newSource == nil {
		if opts.OpenAIKey != "" {
			// One client is shared across units; it holds no mutable state.
			client := openai.NewClient(opts.OpenAIKey)
			model := opts.OpenAIModel
			newSource = func(pool *entity.StaticPool) entity.CompanySource {
				return entity.NewGenerativeSourceWithClient(client, model, pool)
			}
		} else {
			newSource = func(pool *entity.StaticPool) entity.CompanySource {
				return pool
			}
		}
	}

	return &Runner{
		opts:      opts,
		newSource: newSource,
		renderFn:  renderFn,
		log:       logger.WithComponent("batch"),
	}
}

// unitResult carries the outcome of one statement unit.
type unitResult struct {
	index  int
	path   string
	gtPath string
	style  render.Style
	built  *builtStatement
	err    error
}

type builtStatement struct {
	number       string
	company      string
	customer     string
	transactions int
	totalDue     string
}

// Run generates the configured number of statements. Per-statement
// failures are logged and skipped; Run only returns an error for setup
// failures such as an unusable output directory.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	if err := os.MkdirAll(r.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	count := r.opts.Count
	if count < 0 {
		count = 0
	}
	workers := r.opts.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	seed := r.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runID := uuid.New().String()
	log := r.log.With().Str("run_id", runID).Logger()

	log.Info().
		Str("output_dir", r.opts.OutputDir).
		Int("count", count).
		Int("workers", workers).
		Bool("ground_truth", r.opts.GroundTruth).
		Msg("Starting statement batch")

	jobs := make(chan int, count)
	results := make([]unitResult, count)

	var processed int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for index := range jobs {
				log.Debug().
					Int("worker", workerID).
					Int("index", index+1).
					Msg("Worker generating statement")

				res := r.generateOne(ctx, index, seed, runID)
				results[index] = res

				mu.Lock()
				processed++
				status := "✅"
				if res.err != nil {
					status = "❌"
				}
				fmt.Printf("[%d/%d] %s %s", processed, count, filepath.Base(res.path), status)
				if res.err != nil {
					fmt.Printf(" (%s)", res.err.Error())
				}
				fmt.Println()
				mu.Unlock()
			}
		}(w)
	}

	for i := 0; i < count; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	result := &Result{RunID: runID}
	for _, res := range results {
		if res.err != nil {
			log.Error().
				Err(res.err).
				Str("path", res.path).
				Msg("Statement generation failed")
			result.Failures = append(result.Failures, Failure{Index: res.index, Path: res.path, Err: res.err})
			continue
		}
		result.Generated = append(result.Generated, res.path)
	}
	result.Duration = time.Since(startTime)

	if r.opts.Manifest {
		manifestPath := filepath.Join(r.opts.OutputDir, "manifest.xlsx")
		if err := writeManifest(manifestPath, runID, r.opts, results); err != nil {
			// The manifest is a convenience artifact; its failure does
			// not fail the batch.
			log.Error().Err(err).Str("path", manifestPath).Msg("Failed to write manifest")
		} else {
			result.ManifestPath = manifestPath
		}
	}

	log.Info().
		Int("requested", count).
		Int("generated", len(result.Generated)).
		Int("failed", len(result.Failures)).
		Dur("duration", result.Duration).
		Msg("Statement batch completed")

	return result, nil
}

// generateOne runs the full pipeline for one statement index. Ground
// truth is only written after the document rendered and persisted
// successfully.
func (r *Runner) generateOne(ctx context.Context, index int, seed int64, runID string) unitResult {
	style := render.StyleForIndex(index)
	path := filepath.Join(r.opts.OutputDir, fmt.Sprintf("statement_%03d_%s.pdf", index+1, style))
	res := unitResult{index: index, path: path, style: style}

	rng := rand.New(rand.NewSource(seed + int64(index)))
	pool := entity.NewStaticPool(rng)
	source := r.newSource(pool)

	stmt := statement.Build(ctx, source, pool, rng, statement.BuildOptions{
		TransactionCount: r.opts.TransactionCount,
		Now:              r.opts.Now,
	})
	res.built = &builtStatement{
		number:       stmt.Number,
		company:      stmt.Company.Name,
		customer:     stmt.Customer.Name,
		transactions: len(stmt.Transactions),
		totalDue:     stmt.TotalDue.StringFixed(2),
	}

	data, err := r.renderFn(stmt, style, rng)
	if err != nil {
		res.err = fmt.Errorf("render failed: %w", err)
		return res
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		res.err = fmt.Errorf("failed to write document: %w", err)
		return res
	}

	if r.opts.GroundTruth {
		gtPath := strings.TrimSuffix(path, ".pdf") + "_ground_truth.json"
		projector := statement.Projector{RunID: runID, GeneratedAt: stmt.Date}
		if err := statement.WriteGroundTruth(gtPath, projector.Project(stmt, string(style))); err != nil {
			res.err = err
			return res
		}
		res.gtPath = gtPath
	}

	return res
}
