package engine

import "github.com/BraedonM/bundle-optimization/internal/model"

// Scenario names a PackConfig variant to run side by side with others,
// so a caller can compare tuning choices (support threshold, stacking
// tolerance, canonical lengths) without re-running PackOrder by hand
// for each one.
type Scenario struct {
	Name   string
	Config model.PackConfig
}

// ScenarioResult holds one scenario's PackOrder output plus the derived
// statistics used to rank scenarios against each other. Err is set
// instead of Result when the scenario hit OverrideMachineMismatchError.
type ScenarioResult struct {
	Scenario        Scenario
	Result          model.OrderResult
	Err             error
	BundleCount     int
	RemovedCount    int
	TotalWeight     float64
	AvgBundleHeight float64
}

// CompareScenarios packs the same SKU vector once per scenario and
// returns a result per scenario in input order, so a caller can compare
// e.g. the default PackConfig against a looser support threshold.
func CompareScenarios(scenarios []Scenario, skus []model.SKU, bundleWidth, bundleHeight float64, machineLookup model.MachineLookup) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result, err := PackOrder(skus, bundleWidth, bundleHeight, machineLookup, scenario.Config)
		if err != nil {
			results = append(results, ScenarioResult{Scenario: scenario, Err: err})
			continue
		}

		var totalWeight, totalHeight float64
		for _, b := range result.Bundles {
			totalWeight += b.TotalWeight()
			totalHeight += b.Height
		}
		avgHeight := 0.0
		if len(result.Bundles) > 0 {
			avgHeight = totalHeight / float64(len(result.Bundles))
		}

		results = append(results, ScenarioResult{
			Scenario:        scenario,
			Result:          result,
			BundleCount:     len(result.Bundles),
			RemovedCount:    len(result.Removed),
			TotalWeight:     totalWeight,
			AvgBundleHeight: avgHeight,
		})
	}

	return results
}

// BuildDefaultScenarios returns the standard set of PackConfig variants
// worth comparing: the default tuning, a stricter support requirement,
// and a looser stacking tolerance.
func BuildDefaultScenarios() []Scenario {
	base := model.DefaultPackConfig()

	strict := base
	strict.SupportThreshold = 0.95

	loose := base
	loose.StackingMaxDiff = 25.0

	return []Scenario{
		{Name: "default", Config: base},
		{Name: "strict-support", Config: strict},
		{Name: "loose-stacking", Config: loose},
	}
}
