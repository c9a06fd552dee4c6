package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

func makeTestResult() model.OrderResult {
	b1 := model.NewBundle(600, 600, 3680)
	b1.PackingMachine = "MACH1"
	b1.Add(model.PlacedSKU{SKU: model.NewSKU("Shelf.Red", 300, 200, 3680, 4.5, 1, true, ""), X: 0, Y: 0})
	b1.Add(model.PlacedSKU{SKU: model.NewSKU("Filler.Foam", 100, 100, 3680, 0.1, 1, true, ""), X: 300, Y: 0})

	b2 := model.NewBundle(600, 600, 1219)
	b2.PackingMachine = "MACH5"
	b2.Add(model.PlacedSKU{SKU: model.NewSKU("Door.Blue", 400, 350, 1219, 9.0, 1, true, ""), X: 0, Y: 0})

	return model.OrderResult{
		Bundles: []*model.Bundle{b1, b2},
		Removed: []model.RemovedSKU{
			{SKU: model.NewSKU("Oversize.Green", 2000, 2000, 3680, 50, 1, true, ""), Reason: "exceeds cross-section"},
		},
	}
}

func TestCollectBundleTagsCountsContentPerBundle(t *testing.T) {
	result := makeTestResult()
	tags := CollectBundleTags("ORD-100", result)

	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[0].OrderNbr != "ORD-100" {
		t.Errorf("expected order number to propagate, got %q", tags[0].OrderNbr)
	}
	if tags[0].PackingMachine != "MACH1" {
		t.Errorf("expected MACH1, got %q", tags[0].PackingMachine)
	}
	if tags[0].SKUCount != 2 {
		t.Errorf("expected 2 non-packaging placements counted, got %d", tags[0].SKUCount)
	}
	if tags[1].BundleIndex != 2 {
		t.Errorf("expected second tag to be bundle index 2, got %d", tags[1].BundleIndex)
	}
}

func TestCollectBundleTagsEmptyResult(t *testing.T) {
	tags := CollectBundleTags("ORD-1", model.OrderResult{})
	if len(tags) != 0 {
		t.Errorf("expected no tags for an empty result, got %d", len(tags))
	}
}

func TestExportBundleTagsWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.pdf")

	if err := ExportBundleTags(path, "ORD-100", makeTestResult()); err != nil {
		t.Fatalf("ExportBundleTags failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected tags file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty tags PDF")
	}
}

func TestExportBundleTagsNoBundles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tags.pdf")

	err := ExportBundleTags(path, "ORD-1", model.OrderResult{})
	if err == nil {
		t.Fatal("expected error when there are no bundles to tag")
	}
}

func TestExportManifestReportWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.pdf")

	if err := ExportManifestReport(path, "ORD-100", makeTestResult()); err != nil {
		t.Fatalf("ExportManifestReport failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected manifest report file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty manifest PDF")
	}
}

func TestExportManifestReportNoBundles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.pdf")

	err := ExportManifestReport(path, "ORD-1", model.OrderResult{})
	if err == nil {
		t.Fatal("expected error when there are no bundles to report on")
	}
}
