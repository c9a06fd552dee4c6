// Package engine implements the bundle packing pipeline: geometry
// primitives, row/stack placement, filler and packaging insertion, and
// the multi-bundle coordinator that ties them together behind PackOrder.
package engine

import "github.com/BraedonM/bundle-optimization/internal/model"

// packContext carries everything a packing run needs beyond the
// immutable PackConfig: the growing removed-SKU registry and the bottom
// row length discovered while packing the current bundle. It is
// constructed once per PackOrder call and threaded explicitly through
// every function that needs it — nothing here is package-scope state, so
// concurrent or repeated calls to PackOrder never interfere with each
// other.
type packContext struct {
	cfg             model.PackConfig
	removed         []model.RemovedSKU
	bottomRowLength float64
	nonMergeable    map[[2]string]bool
}

func newPackContext(cfg model.PackConfig) *packContext {
	return &packContext{
		cfg:          cfg,
		nonMergeable: make(map[[2]string]bool),
	}
}

func (c *packContext) removeSKU(sku model.SKU, reason string) {
	for _, r := range c.removed {
		if r.Seq() == sku.Seq() {
			return
		}
	}
	c.removed = append(c.removed, model.RemovedSKU{SKU: sku, Reason: reason})
}

// assignSeqs stamps a stable identity onto every SKU in the pool. Called
// once per PackOrder invocation against the flattened, quantity-expanded
// input vector.
func assignSeqs(skus []model.SKU) []model.SKU {
	out := make([]model.SKU, len(skus))
	for i, s := range skus {
		s.AssignSeq(i)
		out[i] = s
	}
	return out
}
