package model

import "github.com/google/uuid"

// SKU is a rectangular item to be packed into a bundle.
//
// Width and Height are never mutated by the engine while probing
// placements: orientation is always derived (see internal/engine's
// OrientedDims) and carried alongside a Rotated flag on PlacedSKU, rather
// than written back onto the SKU itself.
type SKU struct {
	ID          string  `json:"id"`
	Width       float64 `json:"width"`  // mm
	Height      float64 `json:"height"` // mm
	Length      float64 `json:"length"` // mm
	Weight      float64 `json:"weight"` // kg
	BundleQty   int     `json:"bundle_qty"`
	CanBeBottom bool    `json:"can_be_bottom"`
	Description string  `json:"description"`

	// OpaqueAttrs is carried through to output untouched. The engine only
	// reads the tagged keys exposed by BdlOverride/IsComponent/OrderNbr.
	OpaqueAttrs map[string]any `json:"opaque_attrs,omitempty"`

	// seq is a stable identity assigned once when the input vector is
	// expanded by quantity. The stacking finder's forbidden-set uses this
	// instead of pointer identity, so two equal-valued SKUs at different
	// positions in the pool are never confused with each other.
	seq int
}

const seqUnset = -1

// NewSKU builds an SKU with no stable sequence number yet. AssignSeq must
// be called once the SKU enters an expanded packing pool.
func NewSKU(id string, width, height, length, weight float64, bundleQty int, canBeBottom bool, desc string) SKU {
	return SKU{
		ID:          id,
		Width:       width,
		Height:      height,
		Length:      length,
		Weight:      weight,
		BundleQty:   bundleQty,
		CanBeBottom: canBeBottom,
		Description: desc,
		OpaqueAttrs: map[string]any{},
		seq:         seqUnset,
	}
}

// AssignSeq stamps the SKU with a stable identity for this packing run.
func (s *SKU) AssignSeq(n int) { s.seq = n }

// Seq returns the stable per-run identity assigned by AssignSeq, or
// seqUnset if the SKU has not entered a packing pool.
func (s SKU) Seq() int { return s.seq }

// BdlOverride returns the Bdl_Override tag, if present and non-empty.
func (s SKU) BdlOverride() (string, bool) {
	v, ok := s.OpaqueAttrs["Bdl_Override"]
	if !ok || v == nil {
		return "", false
	}
	str, ok := v.(string)
	return str, ok && str != ""
}

// IsComponent returns whether the SKU carries a truthy Component tag.
func (s SKU) IsComponent() bool {
	v, ok := s.OpaqueAttrs["Component"]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// OrderNbr returns the order number tag, if present.
func (s SKU) OrderNbr() (string, bool) {
	v, ok := s.OpaqueAttrs["OrderNbr"]
	if !ok || v == nil {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Color returns the color code: the text after the last '.' in the id,
// with a trailing "_Partial" annotation stripped. SKUs with no '.' in
// their id have no color group and return the id unchanged.
func (s SKU) Color() string {
	last := s.ID
	for i := len(s.ID) - 1; i >= 0; i-- {
		if s.ID[i] == '.' {
			last = s.ID[i+1:]
			break
		}
	}
	const partialSuffix = "_Partial"
	if len(last) > len(partialSuffix) && last[len(last)-len(partialSuffix):] == partialSuffix {
		last = last[:len(last)-len(partialSuffix)]
	}
	return last
}

// IsFiller reports whether this SKU (by id) is a filler placement.
func (s SKU) IsFiller() bool { return idContains(s.ID, "Filler") }

// MachineLookup is the set of color codes that run on the MACH1 packing
// machine; every color absent from it is treated as MACH5.
type MachineLookup map[string]bool

// IsMach1 reports whether color belongs to the MACH1 machine class.
func (m MachineLookup) IsMach1(color string) bool { return m[color] }

func idContains(id, tag string) bool {
	if len(id) < len(tag) {
		return false
	}
	for i := 0; i+len(tag) <= len(id); i++ {
		if id[i:i+len(tag)] == tag {
			return true
		}
	}
	return false
}

// PlacedSKU is an SKU located inside a bundle's cross-section.
//
// Invariant: the rectangle [X, X+Width) x [Y, Y+Height) lies within
// [0, Bundle.Width) x [0, Bundle.Height) and does not overlap any other
// non-filler, non-packaging PlacedSKU's rectangle.
type PlacedSKU struct {
	SKU
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Rotated bool    `json:"rotated"`
}

// IsPackaging reports whether this placement is a weight-only packaging
// attachment, which does not participate in overlap/support invariants.
func (p PlacedSKU) IsPackaging() bool {
	return p.Width == 0 && p.Height == 0 && !p.IsFiller()
}

// Bundle is a fixed-cross-section container packed with SKUs, filler and
// packaging.
type Bundle struct {
	ID             string      `json:"id"`
	Width          float64     `json:"width"`  // shrinks to content once finalized
	Height         float64     `json:"height"` // shrinks to content once finalized
	MaxLength      float64     `json:"max_length"`
	PackingMachine string      `json:"packing_machine"` // "MACH1", "MACH5", or "MIXED"
	Placed         []PlacedSKU `json:"placed"`
}

// NewBundle creates an empty bundle with the given maximum cross-section
// and canonical length.
func NewBundle(width, height, maxLength float64) *Bundle {
	return &Bundle{
		ID:        uuid.New().String()[:8],
		Width:     width,
		Height:    height,
		MaxLength: maxLength,
	}
}

// NonPackagingWeight sums the weight of every placement that is not a
// packaging attachment.
func (b *Bundle) NonPackagingWeight() float64 {
	var total float64
	for _, p := range b.Placed {
		if p.IsPackaging() {
			continue
		}
		total += p.Weight
	}
	return total
}

// TotalWeight sums the weight of every placement, packaging included.
func (b *Bundle) TotalWeight() float64 {
	var total float64
	for _, p := range b.Placed {
		total += p.Weight
	}
	return total
}

// Content returns the placements that participate in overlap/support
// invariants: packaging attachments are filtered out.
func (b *Bundle) Content() []PlacedSKU {
	out := make([]PlacedSKU, 0, len(b.Placed))
	for _, p := range b.Placed {
		if p.IsPackaging() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// IsEmpty reports whether the bundle has no non-packaging content.
func (b *Bundle) IsEmpty() bool { return len(b.Content()) == 0 }

// ResizeToContent shrinks Width/Height to the bounding box of the current
// non-packaging content. A bundle with no content is left untouched.
func (b *Bundle) ResizeToContent() {
	content := b.Content()
	if len(content) == 0 {
		return
	}
	var maxX, maxY float64
	for _, p := range content {
		if right := p.X + p.Width; right > maxX {
			maxX = right
		}
		if top := p.Y + p.Height; top > maxY {
			maxY = top
		}
	}
	b.Width = maxX
	b.Height = maxY
}

// Add places an SKU (or filler/packaging placement) into the bundle.
func (b *Bundle) Add(p PlacedSKU) { b.Placed = append(b.Placed, p) }

// Remove deletes placements matching the predicate, returning the count removed.
func (b *Bundle) Remove(match func(PlacedSKU) bool) int {
	kept := b.Placed[:0]
	removed := 0
	for _, p := range b.Placed {
		if match(p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	b.Placed = kept
	return removed
}

// RemovedSKU records an SKU the engine could not place anywhere, along
// with the reason it was rejected.
type RemovedSKU struct {
	SKU
	Reason string `json:"reason"`
}

// OrderResult is the return value of PackOrder: a finalized bundle list
// plus everything that could not be placed.
type OrderResult struct {
	Bundles []*Bundle    `json:"bundles"`
	Removed []RemovedSKU `json:"removed"`
}
