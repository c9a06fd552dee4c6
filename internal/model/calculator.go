package model

import "math"

// LoadEstimate holds the results of a truck/trailer load calculation for a
// finished set of bundles.
type LoadEstimate struct {
	TotalWeight        float64 `json:"total_weight"`         // kg, across all bundles
	TotalBundles       int     `json:"total_bundles"`
	TruckCapacityKg    float64 `json:"truck_capacity_kg"`
	MaxBundlesPerTruck int     `json:"max_bundles_per_truck"`
	TrucksByWeight      float64 `json:"trucks_by_weight"`      // exact fractional trucks by weight alone
	TrucksByCount       float64 `json:"trucks_by_count"`       // exact fractional trucks by bundle count alone
	TrucksNeeded        int     `json:"trucks_needed"`         // ceiling of whichever constraint binds
	WeightUtilization   float64 `json:"weight_utilization"`    // 0-1, average fill of the trucks used
}

// CalculateLoadEstimate computes how many trucks are needed to ship a set
// of finalized bundles, given a per-truck weight capacity and a maximum
// bundle count per truck (bed-length limited). Whichever constraint
// requires more trucks determines TrucksNeeded.
func CalculateLoadEstimate(bundles []*Bundle, truckCapacityKg float64, maxBundlesPerTruck int) LoadEstimate {
	var totalWeight float64
	for _, b := range bundles {
		totalWeight += b.TotalWeight()
	}
	totalBundles := len(bundles)

	est := LoadEstimate{
		TotalWeight:        totalWeight,
		TotalBundles:       totalBundles,
		TruckCapacityKg:    truckCapacityKg,
		MaxBundlesPerTruck: maxBundlesPerTruck,
	}

	if truckCapacityKg > 0 {
		est.TrucksByWeight = totalWeight / truckCapacityKg
	}
	if maxBundlesPerTruck > 0 {
		est.TrucksByCount = float64(totalBundles) / float64(maxBundlesPerTruck)
	}

	trucksNeeded := math.Ceil(est.TrucksByWeight)
	if byCount := math.Ceil(est.TrucksByCount); byCount > trucksNeeded {
		trucksNeeded = byCount
	}
	if trucksNeeded < 1 && totalBundles > 0 {
		trucksNeeded = 1
	}
	est.TrucksNeeded = int(trucksNeeded)

	if est.TrucksNeeded > 0 && truckCapacityKg > 0 {
		est.WeightUtilization = totalWeight / (float64(est.TrucksNeeded) * truckCapacityKg)
	}

	return est
}
