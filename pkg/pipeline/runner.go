package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/annotick/annotick/pkg/cache"
	"github.com/annotick/annotick/pkg/layout"
	"github.com/annotick/annotick/pkg/observability"
	"github.com/annotick/annotick/pkg/spec"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
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

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	doc, raw, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Doc = doc
	result.SpecHash = cache.Hash(raw)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.LabelCount = len(doc.Ticks)
	result.CacheInfo.LoadHit = loadHit

	logger.Info("loaded spec",
		"axis", doc.Axis,
		"ticks", len(doc.Ticks),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, doc, result.SpecHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.MovedCount = MovedCount(l)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"mode", l.Mode,
		"moved", result.Stats.MovedCount,
		"residual", l.Residual,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo parses the spec with caching and returns cache hit info.
// Cached documents are stored as validated JSON, so a hit skips the
// TOML/YAML parse and the validation pass. This mostly pays off for the
// server, where the same document body arrives repeatedly.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*spec.Document, []byte, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, false, err
	}

	format, raw, err := loadRaw(opts)
	if err != nil {
		return nil, nil, false, err
	}
	cacheKey := r.Keyer.SpecKey(format, cache.Hash(raw))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var doc spec.Document
			if err := json.Unmarshal(data, &doc); err == nil {
				observability.Cache().OnCacheHit(ctx, "spec")
				return &doc, raw, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "spec")
	}

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, format, opts.SpecPath)
	doc, err := spec.Read(bytes.NewReader(raw), format)
	observability.Pipeline().OnLoadComplete(ctx, format, opts.SpecPath, tickCount(doc), time.Since(start), err)
	if err != nil {
		return nil, nil, false, err
	}

	if data, err := json.Marshal(doc); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.SpecTTL)
		observability.Cache().OnCacheSet(ctx, "spec", len(data))
	}

	return doc, raw, false, nil
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, doc *spec.Document, specHash string, opts Options) (layout.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, false, err
	}

	cfg := opts.EffectiveLayoutConfig(doc)
	cacheKey := r.Keyer.LayoutKey(specHash, layoutKeyOpts(cfg))

	// Try cache first
	if !opts.Refresh {
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

	l, err := ComputeLayout(ctx, doc, opts)
	if err != nil {
		return layout.Layout{}, false, err
	}

	// Cache the result
	if data, err := layout.MarshalLayout(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return l, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Compute cache key from layout data
	layoutData, err := layout.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, "artifact")
				allCached = false
				break
			}
		}

		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := RenderFromLayout(ctx, l, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
