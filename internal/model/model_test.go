package model

import "testing"

func TestSKUColorStripsPartialSuffix(t *testing.T) {
	s := NewSKU("Part.123.Red_Partial", 100, 100, 1000, 5, 1, true, "")
	if got := s.Color(); got != "Red" {
		t.Errorf("expected color Red, got %s", got)
	}
}

func TestSKUColorNoDot(t *testing.T) {
	s := NewSKU("PlainID", 100, 100, 1000, 5, 1, true, "")
	if got := s.Color(); got != "PlainID" {
		t.Errorf("expected id itself when no dot present, got %s", got)
	}
}

func TestSKUBdlOverride(t *testing.T) {
	s := NewSKU("id", 1, 1, 1, 1, 1, true, "")
	if _, ok := s.BdlOverride(); ok {
		t.Error("expected no override by default")
	}
	s.OpaqueAttrs["Bdl_Override"] = "GroupA"
	got, ok := s.BdlOverride()
	if !ok || got != "GroupA" {
		t.Errorf("expected override GroupA, got %q ok=%v", got, ok)
	}
}

func TestSKUIsComponent(t *testing.T) {
	s := NewSKU("id", 1, 1, 1, 1, 1, true, "")
	if s.IsComponent() {
		t.Error("expected false by default")
	}
	s.OpaqueAttrs["Component"] = true
	if !s.IsComponent() {
		t.Error("expected true once tagged")
	}
}

func TestSKUIsFiller(t *testing.T) {
	filler := SKU{ID: "Pack_44Filler"}
	if !filler.IsFiller() {
		t.Error("expected filler id to be recognized")
	}
	regular := SKU{ID: "Part.123.Red"}
	if regular.IsFiller() {
		t.Error("expected regular id to not be a filler")
	}
}

func TestPlacedSKUIsPackaging(t *testing.T) {
	packaging := PlacedSKU{SKU: SKU{ID: "Pack_AngleBoard_abc", Weight: 1}}
	if !packaging.IsPackaging() {
		t.Error("expected zero-dimension placement to be packaging")
	}
	content := PlacedSKU{SKU: SKU{ID: "Part.1", Width: 10, Height: 10}}
	if content.IsPackaging() {
		t.Error("expected dimensioned placement to not be packaging")
	}
}

func TestBundleContentExcludesPackaging(t *testing.T) {
	b := NewBundle(1000, 1000, 3680)
	b.Add(PlacedSKU{SKU: SKU{ID: "Part.1", Width: 100, Height: 100, Weight: 5}})
	b.Add(PlacedSKU{SKU: SKU{ID: "Pack_Dunnage1_x", Weight: 1}})

	content := b.Content()
	if len(content) != 1 {
		t.Fatalf("expected 1 content placement, got %d", len(content))
	}
	if content[0].ID != "Part.1" {
		t.Errorf("expected Part.1, got %s", content[0].ID)
	}
}

func TestBundleWeights(t *testing.T) {
	b := NewBundle(1000, 1000, 3680)
	b.Add(PlacedSKU{SKU: SKU{ID: "Part.1", Width: 100, Height: 100, Weight: 5}})
	b.Add(PlacedSKU{SKU: SKU{ID: "Pack_Dunnage1_x", Weight: 2}})

	if b.NonPackagingWeight() != 5 {
		t.Errorf("expected non-packaging weight 5, got %f", b.NonPackagingWeight())
	}
	if b.TotalWeight() != 7 {
		t.Errorf("expected total weight 7, got %f", b.TotalWeight())
	}
}

func TestBundleResizeToContent(t *testing.T) {
	b := NewBundle(2000, 2000, 3680)
	b.Add(PlacedSKU{SKU: SKU{ID: "Part.1", Width: 100, Height: 200}, X: 0, Y: 0})
	b.Add(PlacedSKU{SKU: SKU{ID: "Part.2", Width: 50, Height: 50}, X: 300, Y: 0})

	b.ResizeToContent()
	if b.Width != 350 {
		t.Errorf("expected width 350, got %f", b.Width)
	}
	if b.Height != 200 {
		t.Errorf("expected height 200, got %f", b.Height)
	}
}

func TestBundleResizeToContentEmptyUntouched(t *testing.T) {
	b := NewBundle(2000, 2000, 3680)
	b.ResizeToContent()
	if b.Width != 2000 || b.Height != 2000 {
		t.Error("expected empty bundle dimensions unchanged")
	}
}

func TestBundleRemove(t *testing.T) {
	b := NewBundle(1000, 1000, 3680)
	b.Add(PlacedSKU{SKU: SKU{ID: "Part.1", Width: 100, Height: 100}})
	b.Add(PlacedSKU{SKU: SKU{ID: "Pack_Lumber_x"}})

	removed := b.Remove(func(p PlacedSKU) bool { return p.IsPackaging() })
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
	if len(b.Placed) != 1 {
		t.Errorf("expected 1 remaining placement, got %d", len(b.Placed))
	}
}

func TestSKUSeqAssignment(t *testing.T) {
	s := NewSKU("id", 1, 1, 1, 1, 1, true, "")
	if s.Seq() != seqUnset {
		t.Errorf("expected unset seq, got %d", s.Seq())
	}
	s.AssignSeq(7)
	if s.Seq() != 7 {
		t.Errorf("expected seq 7, got %d", s.Seq())
	}
}
