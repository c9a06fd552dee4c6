// Package export serializes packed orders to workbook and PDF output:
// a spreadsheet manifest with per-bundle summary rows, and a QR-coded
// bundle tag sheet plus tabular manifest report for printing.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

// BundleTagInfo holds the data encoded into each bundle tag's QR code.
type BundleTagInfo struct {
	OrderNbr       string  `json:"order_nbr"`
	BundleIndex    int     `json:"bundle"`
	BundleID       string  `json:"bundle_id"`
	PackingMachine string  `json:"machine"`
	Width          float64 `json:"width_mm"`
	Height         float64 `json:"height_mm"`
	MaxLength      float64 `json:"length_mm"`
	TotalWeight    float64 `json:"weight_kg"`
	SKUCount       int     `json:"sku_count"`
}

// Tag layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each tag cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	tagPageWidth  = 215.9 // US Letter width in mm
	tagPageHeight = 279.4 // US Letter height in mm
	tagMarginTop  = 12.7  // mm
	tagMarginLeft = 4.8   // mm
	tagWidth      = 66.7  // mm per tag
	tagHeight     = 25.4  // mm per tag
	tagCols       = 3
	tagRows       = 10
	tagsPerPage   = tagCols * tagRows
	tagQRSize     = 20.0 // QR code size in mm
	tagPadding    = 2.0  // mm internal padding
)

// CollectBundleTags extracts tag information for every finalized bundle
// in an order, for use in testing or alternative export formats.
func CollectBundleTags(orderNbr string, result model.OrderResult) []BundleTagInfo {
	tags := make([]BundleTagInfo, 0, len(result.Bundles))
	for i, b := range result.Bundles {
		tags = append(tags, BundleTagInfo{
			OrderNbr:       orderNbr,
			BundleIndex:    i + 1,
			BundleID:       b.ID,
			PackingMachine: b.PackingMachine,
			Width:          b.Width,
			Height:         b.Height,
			MaxLength:      b.MaxLength,
			TotalWeight:    b.TotalWeight(),
			SKUCount:       len(b.Content()),
		})
	}
	return tags
}

// ExportBundleTags generates a PDF of QR-coded tags, one per finalized
// bundle in the order. Each tag encodes the order number, bundle index,
// machine tag, and weight as JSON, for scan-on-pack verification.
func ExportBundleTags(path, orderNbr string, result model.OrderResult) error {
	tags := CollectBundleTags(orderNbr, result)
	if len(tags) == 0 {
		return fmt.Errorf("no bundles to generate tags for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, tag := range tags {
		if i%tagsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % tagsPerPage
		col := posOnPage % tagCols
		row := posOnPage / tagCols

		x := tagMarginLeft + float64(col)*tagWidth
		y := tagMarginTop + float64(row)*tagHeight

		if err := renderBundleTag(pdf, x, y, tag); err != nil {
			return fmt.Errorf("failed to render tag for bundle %d: %w", tag.BundleIndex, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderBundleTag draws a single bundle tag at the given position.
func renderBundleTag(pdf *fpdf.Fpdf, x, y float64, info BundleTagInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, tagWidth, tagHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal tag info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_bundle_%s", info.BundleID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + tagWidth - tagQRSize - tagPadding
	qrY := y + (tagHeight-tagQRSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, tagQRSize, tagQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + tagPadding
	textW := tagWidth - tagQRSize - 3*tagPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+tagPadding)
	pdf.CellFormat(textW, 4.5, fmt.Sprintf("Bundle %d", info.BundleIndex), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+tagPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f x %.0f mm", info.Width, info.Height, info.MaxLength)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+tagPadding+9)
	weightLine := fmt.Sprintf("%.1f kg | %s", info.TotalWeight, info.PackingMachine)
	pdf.CellFormat(textW, 3, weightLine, "", 1, "L", false, 0, "")

	if info.OrderNbr != "" {
		pdf.SetXY(textX, y+tagPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.CellFormat(textW, 3, "Order "+info.OrderNbr, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// Report page layout constants (A4 portrait in mm).
const (
	reportPageWidth   = 210.0
	reportPageHeight  = 297.0
	reportMarginLeft  = 15.0
	reportMarginRight = 15.0
	reportMarginTop   = 15.0
)

// ExportManifestReport generates a tabular PDF summary of an order: total
// bundle count, weight, and SKU counts, followed by one row per bundle
// with its machine tag, dimensions, weight, and placement counts. This is
// the non-diagram companion to ExportBundleTags — it reports numbers, not
// rectangle layouts.
func ExportManifestReport(path, orderNbr string, result model.OrderResult) error {
	if len(result.Bundles) == 0 {
		return fmt.Errorf("no bundles to report on")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(reportMarginLeft, reportMarginTop)
	title := "Bundle Manifest"
	if orderNbr != "" {
		title = fmt.Sprintf("Bundle Manifest — Order %s", orderNbr)
	}
	pdf.CellFormat(reportPageWidth-reportMarginLeft-reportMarginRight, 10, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(reportMarginLeft, reportMarginTop+12, reportPageWidth-reportMarginRight, reportMarginTop+12)

	y := reportMarginTop + 18

	var totalWeight float64
	var totalSKUs, totalFillers, totalPackaging int
	for _, b := range result.Bundles {
		totalWeight += b.TotalWeight()
		for _, p := range b.Placed {
			switch {
			case p.IsPackaging():
				totalPackaging++
			case p.IsFiller():
				totalFillers++
			default:
				totalSKUs++
			}
		}
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(reportMarginLeft, y)
	pdf.CellFormat(100, 7, "Order Totals", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Total Bundles", fmt.Sprintf("%d", len(result.Bundles))},
		{"Total Weight", fmt.Sprintf("%.1f kg", totalWeight)},
		{"SKUs Placed", fmt.Sprintf("%d", totalSKUs)},
		{"Filler Pieces", fmt.Sprintf("%d", totalFillers)},
		{"Packaging Attachments", fmt.Sprintf("%d", totalPackaging)},
		{"Removed (Unplaced)", fmt.Sprintf("%d", len(result.Removed))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(reportMarginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(reportMarginLeft, y)
	pdf.CellFormat(100, 7, "Bundle Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{16, 28, 40, 24, 24, 24, 24}
	headers := []string{"#", "Machine", "Dimensions", "Weight", "SKUs", "Filler", "Pack."}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := reportMarginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, b := range result.Bundles {
		var skus, fillers, packaging int
		for _, p := range b.Placed {
			switch {
			case p.IsPackaging():
				packaging++
			case p.IsFiller():
				fillers++
			default:
				skus++
			}
		}

		xPos = reportMarginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			b.PackingMachine,
			fmt.Sprintf("%.0f x %.0f x %.0f", b.Width, b.Height, b.MaxLength),
			fmt.Sprintf("%.1f kg", b.TotalWeight()),
			fmt.Sprintf("%d", skus),
			fmt.Sprintf("%d", fillers),
			fmt.Sprintf("%d", packaging),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6

		if y > reportPageHeight-30 {
			pdf.AddPage()
			y = reportMarginTop
		}
	}

	if len(result.Removed) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(reportMarginLeft, y)
		pdf.CellFormat(180, 7, "WARNING: Unplaced SKUs", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, r := range result.Removed {
			pdf.SetXY(reportMarginLeft+5, y)
			text := fmt.Sprintf("- %s: %.0f x %.0f x %.0f mm (%s)", r.ID, r.Width, r.Height, r.Length, r.Reason)
			pdf.CellFormat(180, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(reportMarginLeft, reportPageHeight-15)
	pdf.CellFormat(reportPageWidth-reportMarginLeft-reportMarginRight, 4, "Generated by the bundle packing manifest writer", "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
