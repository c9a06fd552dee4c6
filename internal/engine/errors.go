package engine

import "fmt"

// OverrideMachineMismatchError is the one error PackOrder raises rather
// than working around: an override tag grouped SKUs whose colors span
// both machine classes, which has no local recovery (spec.md §4.15 — a
// mix across machines within one override tag is invalid and must
// surface, fatal to the whole order).
type OverrideMachineMismatchError struct {
	OverrideTag string
}

func (e *OverrideMachineMismatchError) Error() string {
	return fmt.Sprintf("bundle override %q mixes packing machines", e.OverrideTag)
}
