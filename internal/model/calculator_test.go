package model

import (
	"math"
	"testing"
)

func makeWeightedBundle(weight float64) *Bundle {
	b := NewBundle(1200, 1200, 3680)
	b.Add(PlacedSKU{SKU: SKU{ID: "sku", Width: 100, Height: 100, Weight: weight}})
	return b
}

func TestCalculateLoadEstimateBasic(t *testing.T) {
	bundles := []*Bundle{
		makeWeightedBundle(500),
		makeWeightedBundle(500),
		makeWeightedBundle(500),
	}
	est := CalculateLoadEstimate(bundles, 1000, 10)

	if math.Abs(est.TotalWeight-1500) > 0.001 {
		t.Errorf("expected total weight 1500, got %f", est.TotalWeight)
	}
	if est.TotalBundles != 3 {
		t.Errorf("expected 3 bundles, got %d", est.TotalBundles)
	}
	if est.TrucksNeeded != 2 {
		t.Errorf("expected 2 trucks (weight-bound), got %d", est.TrucksNeeded)
	}
}

func TestCalculateLoadEstimateCountBound(t *testing.T) {
	bundles := make([]*Bundle, 5)
	for i := range bundles {
		bundles[i] = makeWeightedBundle(1)
	}
	est := CalculateLoadEstimate(bundles, 100000, 2)
	if est.TrucksNeeded != 3 {
		t.Errorf("expected 3 trucks (count-bound), got %d", est.TrucksNeeded)
	}
}

func TestCalculateLoadEstimateNoBundles(t *testing.T) {
	est := CalculateLoadEstimate(nil, 1000, 10)
	if est.TrucksNeeded != 0 {
		t.Errorf("expected 0 trucks for empty input, got %d", est.TrucksNeeded)
	}
	if est.TotalWeight != 0 {
		t.Errorf("expected 0 total weight, got %f", est.TotalWeight)
	}
}

func TestCalculateLoadEstimateUtilization(t *testing.T) {
	bundles := []*Bundle{makeWeightedBundle(800)}
	est := CalculateLoadEstimate(bundles, 1000, 10)
	if est.TrucksNeeded != 1 {
		t.Fatalf("expected 1 truck, got %d", est.TrucksNeeded)
	}
	if math.Abs(est.WeightUtilization-0.8) > 0.001 {
		t.Errorf("expected utilization 0.8, got %f", est.WeightUtilization)
	}
}
