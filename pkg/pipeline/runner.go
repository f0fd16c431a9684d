package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tikznet/pkg/cache"
	"github.com/matzehuels/tikznet/pkg/network"
	"github.com/matzehuels/tikznet/pkg/observability"
	"github.com/matzehuels/tikznet/pkg/style"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store plot results. Multiple goroutines can safely use the same Runner.
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
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Plot runs [Plot] with the runner's cache and logger and reports the
// stages to the observability hooks.
func (r *Runner) Plot(ctx context.Context, net network.Network, kw style.Keywords, opts ...Option) (*Result, error) {
	hooks := observability.Pipeline()
	if net != nil {
		hooks.OnIngest(ctx, len(net.Nodes()), len(net.Edges()), net.Directed())
	}

	algorithm := "random"
	if v, ok := kw.Lookup(style.KeyLayout); ok && v != nil {
		if name, isName := v.(string); isName {
			algorithm = name
		} else {
			algorithm = "given"
		}
	}
	nodes := 0
	if net != nil {
		nodes = len(net.Nodes())
	}
	hooks.OnLayoutStart(ctx, algorithm, nodes)

	all := append([]Option{WithLogger(r.Logger), WithLayoutCache(r.Cache, r.Keyer)}, opts...)
	start := time.Now()
	res, err := Plot(ctx, net, kw, all...)
	hooks.OnLayoutComplete(ctx, algorithm, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("computed layout",
		"run", res.RunID,
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"cached", res.CacheInfo.LayoutHit,
		"duration", res.Stats.LayoutTime)
	return res, nil
}

// RenderFunc produces one artifact of a plot.
type RenderFunc func() ([]byte, error)

// Artifact returns the rendered bytes for res, serving them from the cache
// when the same records were rendered with the same options before.
// The boolean reports a cache hit.
func (r *Runner) Artifact(ctx context.Context, res *Result, opts cache.ArtifactKeyOpts, render RenderFunc) ([]byte, bool, error) {
	hooks := observability.Pipeline()
	formats := []string{opts.Format}
	hooks.OnRenderStart(ctx, formats)
	start := time.Now()

	key := ""
	if records, err := recordsHash(res); err == nil {
		key = r.Keyer.ArtifactKey(records, opts)
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			hooks.OnRenderComplete(ctx, formats, time.Since(start), nil)
			return data, true, nil
		}
	}

	data, err := render()
	hooks.OnRenderComplete(ctx, formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	if key != "" {
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(data),
		"duration", time.Since(start))
	return data, false, nil
}

// recordsHash hashes everything an emitter reads from a result.
func recordsHash(res *Result) (string, error) {
	data, err := json.Marshal(struct {
		Directed bool           `json:"directed"`
		Nodes    []NodeRecord   `json:"nodes"`
		Edges    []EdgeRecord   `json:"edges"`
		Canvas   any            `json:"canvas"`
		General  map[string]any `json:"general"`
	}{res.Directed, res.Nodes, res.Edges, res.Canvas, res.General})
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
