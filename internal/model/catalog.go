package model

import "github.com/google/uuid"

// FillerVariant is one of the fixed filler-material sizes the engine may
// insert into leftover void space. Filler ids always contain the
// substring "Filler" so SKU.IsFiller can recognize them downstream.
type FillerVariant struct {
	ID     string
	Width  float64
	Height float64
	Length float64
	Weight float64
}

// FillerCatalog lists the filler variants available to the filler
// inserter, in the order they should be tried (larger first).
var FillerCatalog = []FillerVariant{
	{ID: "Pack_44Filler", Width: 100, Height: 100, Length: 100, Weight: 1.810},
	{ID: "Pack_62Filler", Width: 150, Height: 50, Length: 50, Weight: 2.268},
}

// NewFillerPlacement builds a PlacedSKU for a filler variant at the given
// position, rotated as instructed.
func NewFillerPlacement(v FillerVariant, x, y float64, rotated bool) PlacedSKU {
	w, h := v.Width, v.Height
	if rotated {
		w, h = h, w
	}
	return PlacedSKU{
		SKU: SKU{
			ID:     v.ID,
			Width:  w,
			Height: h,
			Length: v.Length,
			Weight: v.Weight,
		},
		X:       x,
		Y:       y,
		Rotated: rotated,
	}
}

// PackagingID identifies one of the catalog-fixed packaging attachments.
type PackagingID string

const (
	PackagingAngleBoard       PackagingID = "Pack_AngleBoard"
	PackagingDunnageA         PackagingID = "Pack_Dunnage1"
	PackagingDunnageB         PackagingID = "Pack_Dunnage2"
	PackagingSubBundleWrap    PackagingID = "Pack_SubBundleWrap"
	PackagingMasterBundleWrap PackagingID = "Pack_MasterBundleWrap"
	PackagingPad              PackagingID = "Pack_Pad"
	PackagingLumber           PackagingID = "Pack_Lumber"
)

// packagingWeights pins the per-attachment weight (kg) of every fixed
// packaging item. Pad weight scales with the matched pad size instead of
// being fixed, so it is computed in BuildPackaging.
var packagingWeights = map[PackagingID]float64{
	PackagingAngleBoard:       0.450,
	PackagingDunnageA:         1.200,
	PackagingDunnageB:         0.900,
	PackagingSubBundleWrap:    0.350,
	PackagingMasterBundleWrap: 0.600,
	PackagingLumber:           3.500,
}

func newPackagingPlacement(id PackagingID, weight float64) PlacedSKU {
	return PlacedSKU{SKU: SKU{ID: string(id) + "_" + uuid.New().String()[:8], Weight: weight}}
}

// BuildPackaging returns the weight-only packaging attachments a
// finalized bundle receives, per the rules in spec.md section 4.13:
// angleboards scaled by canonical length, two dunnage variants,
// sub-bundle and master-bundle wraps, one pad per matched dimension
// (skipping dimensions below MinPadSize), and lumber when every
// non-filler SKU in the bundle is unrotated and the bundle is tall
// enough to need runners.
func (c PackConfig) BuildPackaging(b *Bundle, allUnrotated bool) []PlacedSKU {
	var out []PlacedSKU

	angleboards := 2
	if b.MaxLength >= c.LongLength {
		angleboards = 4
	}
	for i := 0; i < angleboards; i++ {
		out = append(out, newPackagingPlacement(PackagingAngleBoard, packagingWeights[PackagingAngleBoard]))
	}

	out = append(out, newPackagingPlacement(PackagingDunnageA, packagingWeights[PackagingDunnageA]))
	out = append(out, newPackagingPlacement(PackagingDunnageB, packagingWeights[PackagingDunnageB]))
	out = append(out, newPackagingPlacement(PackagingSubBundleWrap, packagingWeights[PackagingSubBundleWrap]))
	out = append(out, newPackagingPlacement(PackagingMasterBundleWrap, packagingWeights[PackagingMasterBundleWrap]))

	if pad, ok := c.matchPad(b.Width); ok {
		out = append(out, newPackagingPlacement(PackagingPad, pad))
	}
	if pad, ok := c.matchPad(b.Height); ok {
		out = append(out, newPackagingPlacement(PackagingPad, pad))
	}

	if allUnrotated && b.Height > c.BottomRowMinHeight {
		lumberPieces := 1
		if b.MaxLength >= c.LongLength {
			lumberPieces = 2
		}
		for i := 0; i < lumberPieces; i++ {
			out = append(out, newPackagingPlacement(PackagingLumber, packagingWeights[PackagingLumber]))
		}
	}

	return out
}

// matchPad finds the smallest pad size in PadSizes at least as large as
// dim; a dimension larger than every size gets the largest pad.
// Dimensions below MinPadSize receive no pad. Pad weight is modeled
// as 0.004 kg per mm of matched size, a light material-proportional
// estimate consistent with the other packaging weights.
func (c PackConfig) matchPad(dim float64) (weight float64, ok bool) {
	if dim < c.MinPadSize {
		return 0, false
	}
	for _, size := range c.PadSizes {
		if dim <= size {
			return size * 0.004, true
		}
	}
	if len(c.PadSizes) > 0 {
		last := c.PadSizes[len(c.PadSizes)-1]
		return last * 0.004, true
	}
	return 0, false
}

// MachinePreset describes a packing machine's cross-section ceiling and
// the canonical lengths it can run.
type MachinePreset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"` // e.g. "MACH1", "MACH5"
	MaxWidth    float64   `json:"max_width"`
	MaxHeight   float64   `json:"max_height"`
	LengthsRun  []float64 `json:"lengths_run"`
}

// NewMachinePreset creates a MachinePreset with a generated ID.
func NewMachinePreset(name string, maxWidth, maxHeight float64, lengthsRun []float64) MachinePreset {
	return MachinePreset{
		ID:         uuid.New().String()[:8],
		Name:       name,
		MaxWidth:   maxWidth,
		MaxHeight:  maxHeight,
		LengthsRun: lengthsRun,
	}
}

// Fits reports whether a bundle of the given cross-section and length
// can run on this machine.
func (m MachinePreset) Fits(width, height, length float64) bool {
	if width > m.MaxWidth || height > m.MaxHeight {
		return false
	}
	for _, l := range m.LengthsRun {
		if l == length {
			return true
		}
	}
	return false
}

// BundleProfile is a reusable named bundle cross-section preset, used to
// seed a new order's starting bundle dimensions.
type BundleProfile struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBundleProfile creates a BundleProfile with a generated ID.
func NewBundleProfile(name string, width, height float64) BundleProfile {
	return BundleProfile{ID: uuid.New().String()[:8], Name: name, Width: width, Height: height}
}

// MachineCatalog holds the user's saved machine presets and bundle
// profiles.
type MachineCatalog struct {
	Machines []MachinePreset `json:"machines"`
	Bundles  []BundleProfile `json:"bundles"`
}

// DefaultMachineCatalog returns a catalog populated with the two
// canonical packing machines and a few common bundle cross-sections.
func DefaultMachineCatalog() MachineCatalog {
	return MachineCatalog{
		Machines: []MachinePreset{
			NewMachinePreset("MACH1", 1200, 1200, []float64{3680}),
			NewMachinePreset("MACH5", 1500, 1500, []float64{3680, 7340}),
		},
		Bundles: []BundleProfile{
			NewBundleProfile("Standard 1200x1200", 1200, 1200),
			NewBundleProfile("Wide 1500x1500", 1500, 1500),
			NewBundleProfile("Narrow 900x900", 900, 900),
		},
	}
}

// FindMachineByName returns a pointer to the machine preset with the
// given name, or nil.
func (c *MachineCatalog) FindMachineByName(name string) *MachinePreset {
	for i := range c.Machines {
		if c.Machines[i].Name == name {
			return &c.Machines[i]
		}
	}
	return nil
}

// FindBundleByID returns a pointer to the bundle profile with the given
// ID, or nil.
func (c *MachineCatalog) FindBundleByID(id string) *BundleProfile {
	for i := range c.Bundles {
		if c.Bundles[i].ID == id {
			return &c.Bundles[i]
		}
	}
	return nil
}

// MachineNames returns the names of every machine preset.
func (c *MachineCatalog) MachineNames() []string {
	names := make([]string, len(c.Machines))
	for i, m := range c.Machines {
		names[i] = m.Name
	}
	return names
}

// BundleNames returns the names of every bundle profile.
func (c *MachineCatalog) BundleNames() []string {
	names := make([]string, len(c.Bundles))
	for i, b := range c.Bundles {
		names[i] = b.Name
	}
	return names
}
