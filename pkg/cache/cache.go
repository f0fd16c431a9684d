// Package cache stores computed layouts and rendered artifacts between runs.
//
// Layout is the expensive stage of a plot: the force-directed engine runs
// O(n²) work per iteration. The CLI keeps results in a [FileCache] under the
// user cache directory so that re-plotting the same network with a different
// output format or style skips the layout entirely.
//
// # Keys
//
// Keys are derived by a [Keyer] from a content hash of the input and the
// options that influence the output:
//
//	k := cache.NewDefaultKeyer()
//	key := k.LayoutKey(cache.Hash(networkJSON), cache.LayoutKeyOpts{
//	    Algorithm: "fruchterman-reingold",
//	    Seed:      &seed,
//	})
//
// [ScopedKeyer] prefixes every key, which the CLI uses to separate entries
// written by different builds.
//
// # Implementations
//
//   - [FileCache]: one JSON file per entry with an optional expiry
//   - [NullCache]: never stores anything, used with --no-cache
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// A miss is reported as (nil, false, nil), never as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Entry lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(networkHash string, opts LayoutKeyOpts) string
	ArtifactKey(recordsHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds every layout keyword that changes the computed
// coordinates. Positions and fixed nodes are folded in as hashes.
type LayoutKeyOpts struct {
	Algorithm  string   `json:"algorithm"`
	K          float64  `json:"k,omitempty"`
	Iterations int      `json:"iterations,omitempty"`
	Threshold  float64  `json:"threshold,omitempty"`
	Dimension  int      `json:"dimension,omitempty"`
	Seed       *uint64  `json:"seed,omitempty"`
	Solver     string   `json:"solver,omitempty"`
	Weight     string   `json:"weight,omitempty"`
	Fixed      []string `json:"fixed,omitempty"`
	Positions  string   `json:"positions,omitempty"`
}

// ArtifactKeyOpts identifies one rendered output of a set of records.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Standalone bool   `json:"standalone"`
}

// DefaultKeyer builds keys of the form "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns the key for a layout of the network with the given hash.
func (DefaultKeyer) LayoutKey(networkHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", networkHash, opts)
}

// ArtifactKey returns the key for one rendered format of a record set.
func (DefaultKeyer) ArtifactKey(recordsHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", recordsHash, opts)
}
