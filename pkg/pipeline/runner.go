package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/flowsketch/flowsketch/pkg/bpmn"
	"github.com/flowsketch/flowsketch/pkg/bpmn/di"
	"github.com/flowsketch/flowsketch/pkg/cache"
	"github.com/flowsketch/flowsketch/pkg/layout"
	"github.com/flowsketch/flowsketch/pkg/observability"
	"github.com/flowsketch/flowsketch/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete decode → layout → emit pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Decode
	decodeStart := time.Now()
	p, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.ElementCount = p.ElementCount()
	result.Stats.FlowCount = p.FlowCount()
	result.Process = &ProcessInfo{
		ID:           p.ID,
		Name:         p.Name,
		ElementCount: result.Stats.ElementCount,
		FlowCount:    result.Stats.FlowCount,
		LaneCount:    len(p.Lanes),
	}

	// Hash the normalized process JSON for cache keys and API responses
	if data, err := bpmn.MarshalProcess(p); err == nil {
		result.ProcessHash = cache.Hash(data)
	}

	r.Logger.Info("decoded process",
		"elements", result.Stats.ElementCount,
		"flows", result.Stats.FlowCount,
		"duration", result.Stats.DecodeTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, p, result.ProcessHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"nodes", len(l.Nodes),
		"edges", len(l.Edges),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Emit
	emitStart := time.Now()
	artifacts, emitHit, err := r.EmitWithCacheInfo(ctx, p, l, opts)
	if err != nil {
		return nil, fmt.Errorf("emit: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EmitTime = time.Since(emitStart)
	result.CacheInfo.EmitHit = emitHit

	r.Logger.Info("emitted outputs",
		"formats", opts.Formats,
		"duration", result.Stats.EmitTime)

	return result, nil
}

// Decode parses a process definition from the source JSON.
func (r *Runner) Decode(ctx context.Context, opts Options) (bpmn.Process, error) {
	if err := opts.ValidateForDecode(); err != nil {
		return bpmn.Process{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, len(opts.Source))
	start := time.Now()

	p, err := bpmn.UnmarshalProcess(opts.Source)
	hooks.OnDecodeComplete(ctx, p.ElementCount(), p.FlowCount(), time.Since(start), err)
	if err != nil {
		return bpmn.Process{}, err
	}
	return p, nil
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info. processHash identifies the decoded process; pass an
// empty string to skip caching for this call.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, p bpmn.Process, processHash string, opts Options) (*layout.Layout, bool, error) {
	opts.setRuntimeDefaults()
	r.applyLogger(&opts)

	cacheKey := ""
	if processHash != "" {
		cacheKey = r.Keyer.LayoutKey(processHash, opts.LayoutKeyOpts())
	}

	// Try cache first (unless refresh requested)
	if cacheKey != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := layout.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, p.ElementCount(), p.FlowCount())
	start := time.Now()

	l := layout.Calculate(p, *opts.Config)
	hooks.OnLayoutComplete(ctx, len(l.Nodes), time.Since(start), nil)

	// Cache the result
	if cacheKey != "" {
		if data, err := layout.MarshalLayout(l); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo
// without caching and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, p bpmn.Process, opts Options) (*layout.Layout, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, p, "", opts)
	return l, err
}

// EmitWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) EmitWithCacheInfo(ctx context.Context, p bpmn.Process, l *layout.Layout, opts Options) (map[string][]byte, bool, error) {
	opts.SetEmitDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := layout.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}

	// Emit all formats
	emitted, err := r.emitFormats(ctx, p, l, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range emitted {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return emitted, false, nil
}

// Emit is a convenience wrapper that calls EmitWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Emit(ctx context.Context, p bpmn.Process, l *layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.EmitWithCacheInfo(ctx, p, l, opts)
	return artifacts, err
}

func (r *Runner) emitFormats(ctx context.Context, p bpmn.Process, l *layout.Layout, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	for _, format := range opts.Formats {
		hooks.OnEmitStart(ctx, format)
		start := time.Now()

		var data []byte
		var err error
		switch format {
		case FormatJSON:
			data, err = layout.MarshalLayout(l)
		case FormatXML:
			planeElement := opts.ProcessID
			if planeElement == "" {
				planeElement = p.ID
			}
			data = []byte(di.Emit(l, di.Options{PlaneElement: planeElement}))
		case FormatSVG:
			if dot == "" {
				dot = render.ToDOT(&p, render.Options{Detailed: opts.Detailed})
			}
			data, err = render.RenderSVG(ctx, dot)
		case FormatPNG:
			if dot == "" {
				dot = render.ToDOT(&p, render.Options{Detailed: opts.Detailed})
			}
			data, err = render.RenderPNG(ctx, dot)
		default:
			err = ValidateFormat(format)
		}

		hooks.OnEmitComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("emit %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
