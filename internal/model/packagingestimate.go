package model

import "math"

// WrapEstimate holds the calculated strap/wrap material requirement for a
// finished set of bundles.
type WrapEstimate struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // wrap length with no waste
	TotalLinearM     float64 `json:"total_linear_m"`
	WastePercent     float64 `json:"waste_percent"`
	TotalWithWasteMM float64 `json:"total_with_waste_mm"`
	TotalWithWasteM  float64 `json:"total_with_waste_m"`
	BundleCount      int     `json:"bundle_count"`
	WrapsApplied     int     `json:"wraps_applied"` // sub-bundle + master-bundle wraps counted
}

// wrapsPerBundle matches the packaging rule in catalog.go: one sub-bundle
// wrap and one master-bundle wrap per finalized bundle.
const wrapsPerBundle = 2

// CalculateWrapEstimate computes the total linear wrap material consumed
// across a set of finalized bundles, based on each bundle's perimeter.
// wastePercent is the additional percentage to add for handling waste
// (e.g., 10 for 10%).
func CalculateWrapEstimate(bundles []*Bundle, wastePercent float64) WrapEstimate {
	var totalMM float64
	wrapsApplied := 0

	for _, b := range bundles {
		perimeter := 2 * (b.Width + b.Height)
		totalMM += perimeter * wrapsPerBundle
		wrapsApplied += wrapsPerBundle
	}

	wasteFactor := 1.0 + (wastePercent / 100.0)
	totalWithWaste := totalMM * wasteFactor

	return WrapEstimate{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: math.Ceil(totalWithWaste),
		TotalWithWasteM:  math.Ceil(totalWithWaste) / 1000.0,
		BundleCount:      len(bundles),
		WrapsApplied:     wrapsApplied,
	}
}
