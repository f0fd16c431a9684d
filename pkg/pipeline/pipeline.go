// Package pipeline turns a network and a list of style keywords into
// emitter-ready node and edge records.
//
// # Stages
//
// [Plot] runs the stages in order, each one producing new values:
//
//  1. Ingest: ordered node ids and edges keyed by edge id
//  2. Normalize: canonical keyword names bucketed into node, edge and general
//  3. Directedness: edge_directed defaults to true on directed networks
//  4. Units: sizes to centimeters, widths and font sizes to points
//  5. Canvas: size, margins and drawable area
//  6. Layout: a node→coordinate mapping, or the layout engine
//  7. Fit: scale the layout into the drawable area
//  8. Merge: coordinates onto the node records
//  9. Curvature: edge_curved factors to bend angles
//  10. Records: one flat attribute record per node and per edge
//
// # Usage
//
//	net := network.NewList([]string{"a", "b"}, [][2]string{{"a", "b"}}, false)
//	kw := style.Keywords{
//	    {Key: "layout", Value: "fr"},
//	    {Key: "layout_seed", Value: 42},
//	    {Key: "node_color", Value: "red"},
//	}
//	res, err := pipeline.Plot(ctx, net, kw)
//
// A [Runner] wraps Plot with a layout cache, stage timings and hooks. The
// CLI uses a Runner backed by a file cache.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tikznet/pkg/cache"
	"github.com/matzehuels/tikznet/pkg/canvas"
	"github.com/matzehuels/tikznet/pkg/layout"
	"github.com/matzehuels/tikznet/pkg/network"
)

// =============================================================================
// Records
// =============================================================================

// KeyLayout is the reserved node attribute that holds the fitted coordinate.
const KeyLayout = "layout"

// NodeRecord is everything an emitter needs to draw one node. Attrs holds
// every node attribute by canonical name; a nil value means unset for this
// node.
type NodeRecord struct {
	ID    network.NodeID `json:"id"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// EdgeRecord is everything an emitter needs to draw one edge.
type EdgeRecord struct {
	ID    network.EdgeID `json:"id"`
	U     network.NodeID `json:"u"`
	V     network.NodeID `json:"v"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Result contains the outputs of one plot.
type Result struct {
	// RunID identifies the run in logs and in the records dump.
	RunID string `json:"run_id"`

	Directed bool         `json:"directed"`
	Nodes    []NodeRecord `json:"nodes"`
	Edges    []EdgeRecord `json:"edges"`

	Canvas *canvas.Canvas `json:"canvas"`

	// General holds the general keywords after unit conversion.
	General map[string]any `json:"general,omitempty"`

	// Layout is the fitted layout, also merged into Nodes.
	Layout layout.Layout `json:"-"`

	Stats     Stats     `json:"-"`
	CacheInfo CacheInfo `json:"-"`
}

// Stats contains plot timing and size information.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
	TotalTime  time.Duration
}

// CacheInfo tracks which stages hit the cache.
type CacheInfo struct {
	LayoutHit bool
}

// =============================================================================
// Options
// =============================================================================

// Option configures [Plot].
type Option func(*config)

type config struct {
	logger *log.Logger
	engine *layout.Engine
	runID  string

	cache cache.Cache
	keyer cache.Keyer
}

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEngine replaces the layout engine.
func WithEngine(e *layout.Engine) Option {
	return func(c *config) {
		if e != nil {
			c.engine = e
		}
	}
}

// WithRunID sets the run id instead of generating one.
func WithRunID(id string) Option {
	return func(c *config) { c.runID = id }
}

// WithLayoutCache stores engine layouts of seeded runs in c. Unseeded runs
// are random by request and are never cached.
func WithLayoutCache(c cache.Cache, k cache.Keyer) Option {
	return func(cfg *config) {
		cfg.cache = c
		cfg.keyer = k
		if cfg.keyer == nil {
			cfg.keyer = cache.NewDefaultKeyer()
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = layout.NewEngine(c.logger)
	}
	return c
}
