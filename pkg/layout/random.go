package layout

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/network"
)

// NewRand returns a PCG generator for seed, or a freshly seeded one when
// seed is nil.
func NewRand(seed *uint64) *rand.Rand {
	s := rand.Uint64()
	if seed != nil {
		s = *seed
	}
	return rand.New(rand.NewPCG(s, s^0xdeadbeef))
}

// Random places every node uniformly in the unit square [0,1)².
func Random(ids []network.NodeID, rng *rand.Rand) Layout {
	l := make(Layout, len(ids))
	for _, id := range ids {
		l[id] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
	}
	return l
}
