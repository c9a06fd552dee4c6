package model

// PackConfig holds every tuning constant the packing engine consults.
// Two bundles packed with the same PackConfig and the same input vector
// must produce identical output — none of these values may be derived
// from wall-clock time, randomness, or process state.
type PackConfig struct {
	// MaxWeight is the maximum total weight (kg) a single bundle may carry.
	MaxWeight float64 `json:"max_weight"`

	// SupportThreshold is the minimum fraction of an SKU's footprint that
	// must rest on the items beneath it for the placement to be valid.
	SupportThreshold float64 `json:"support_threshold"`

	// SKUCoverageHeightBuffer (mm) widens the support-band test: an SKU
	// resting at height y is considered supported by anything whose top
	// falls within [y-buffer, y+buffer].
	SKUCoverageHeightBuffer float64 `json:"sku_coverage_height_buffer"`

	// StackingMaxDiff (mm) is the maximum width difference, and the maximum
	// height difference, allowed between two SKUs chained end-to-end along
	// the length axis.
	StackingMaxDiff float64 `json:"stacking_max_diff"`

	// SKUMaxHeightDiff (mm) is the maximum height difference allowed
	// between SKUs placed side by side in the same row. Distinct from
	// StackingMaxDiff: row cohesion and stack compatibility are unrelated
	// tolerances and must never collapse into a single constant.
	SKUMaxHeightDiff float64 `json:"sku_max_height_diff"`

	// ShortLength and LongLength (mm) are the two canonical bundle
	// lengths a bundle may be built to.
	ShortLength float64 `json:"short_length"`
	LongLength  float64 `json:"long_length"`

	// BottomRowMinHeight (mm) is the bundle height above which
	// BuildPackaging adds lumber to a bundle whose non-filler items are all
	// unrotated.
	BottomRowMinHeight float64 `json:"bottom_row_min_height"`

	// ShortSKUMax (mm) is the length at or below which an SKU counts as
	// "short": short SKUs are packed in a pass after the long ones and
	// never count as support for items resting on them.
	ShortSKUMax float64 `json:"short_sku_max"`

	// MinHeightWidthRatio is the height/width ratio below which the
	// reshaper re-packs a bundle of more than two items at a width 20 mm
	// narrower.
	MinHeightWidthRatio float64 `json:"min_height_width_ratio"`

	// MinCeilingCoverage is the minimum fraction of the bundle's width
	// covered by items whose top lies within MaxDistFromCeiling of the
	// bundle's height.
	MinCeilingCoverage  float64 `json:"min_ceiling_coverage"`
	MaxDistFromCeiling  float64 `json:"max_dist_from_ceiling"` // mm

	// HalfBundleLength (mm) and HalfBundleTolerance (mm) are carried in the
	// config and saved with it, but no engine code reads them: SKUs near
	// this length get no special handling and are never chained or doubled
	// along the length axis.
	HalfBundleLength    float64 `json:"half_bundle_length"`
	HalfBundleTolerance float64 `json:"half_bundle_tolerance"`

	// PadSizes (mm) lists the available pad sizes, smallest first, used
	// to match a bundle's width/height when attaching packaging.
	PadSizes []float64 `json:"pad_sizes"`

	// MinPadSize (mm) is the smallest pad worth attaching; bundle
	// dimensions below this receive no pad on that side.
	MinPadSize float64 `json:"min_pad_size"`
}

// DefaultPackConfig returns the pinned defaults documented in SPEC_FULL.md
// section E, traced to original_source/src/bundle_packing.py where a
// literal was present there.
func DefaultPackConfig() PackConfig {
	return PackConfig{
		MaxWeight:               2000.0,
		SupportThreshold:        0.85,
		SKUCoverageHeightBuffer: 10.0,
		StackingMaxDiff:         13.0,
		SKUMaxHeightDiff:        100.0,
		ShortLength:             3680.0,
		LongLength:              7340.0,
		BottomRowMinHeight:      100.0,
		ShortSKUMax:             609.0,
		MinHeightWidthRatio:     0.5,
		MinCeilingCoverage:      0.7,
		MaxDistFromCeiling:      15.0,
		HalfBundleLength:        3650.0,
		HalfBundleTolerance:     30.0,
		PadSizes:                []float64{152, 203, 254, 305},
		MinPadSize:              152.0,
	}
}
