package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/BraedonM/bundle-optimization/internal/model"
)

const manifestSheetName = "Bundles"

var manifestHeader = []string{"Bundle", "Machine", "SKU ID", "Width", "Height", "Length", "Weight", "X", "Y", "Rotated", "Kind"}

// WriteManifestWorkbook serializes a packed order into an XLSX workbook:
// one row per placement, grouped by bundle, with a "Total_Bundle_N"
// summary row closing out each bundle's rows and a "Total_Order" summary
// row closing out the sheet. Packaging placements are written at an
// outline level one deeper than their bundle's content rows, so they can
// be collapsed independently in a spreadsheet viewer.
func WriteManifestWorkbook(path string, result model.OrderResult) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, manifestSheetName); err != nil {
		return fmt.Errorf("failed to name manifest sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create total style: %w", err)
	}

	row := 1
	for col, h := range manifestHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		f.SetCellValue(manifestSheetName, cell, h)
	}
	f.SetRowStyle(manifestSheetName, row, row, headerStyle)
	row++

	var orderWeight float64
	var orderPlacements int

	for bIdx, b := range result.Bundles {
		var bundleWeight float64

		for _, p := range b.Placed {
			kind := "sku"
			outlineLevel := 0
			switch {
			case p.IsPackaging():
				kind = "packaging"
				outlineLevel = 1
			case p.IsFiller():
				kind = "filler"
			}

			values := []interface{}{
				bIdx + 1,
				b.PackingMachine,
				p.ID,
				p.Width,
				p.Height,
				p.Length,
				p.Weight,
				p.X,
				p.Y,
				p.Rotated,
				kind,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				f.SetCellValue(manifestSheetName, cell, v)
			}
			if outlineLevel > 0 {
				f.SetRowOutlineLevel(manifestSheetName, row, uint8(outlineLevel))
			}

			bundleWeight += p.Weight
			row++
		}

		totalLabel := fmt.Sprintf("Total_Bundle_%d", bIdx+1)
		f.SetCellValue(manifestSheetName, cellRef(1, row), totalLabel)
		f.SetCellValue(manifestSheetName, cellRef(4, row), fmt.Sprintf("%d placements", len(b.Placed)))
		f.SetCellValue(manifestSheetName, cellRef(7, row), bundleWeight)
		f.SetRowStyle(manifestSheetName, row, row, totalStyle)
		row++

		orderWeight += bundleWeight
		orderPlacements += len(b.Placed)
	}

	f.SetCellValue(manifestSheetName, cellRef(1, row), "Total_Order")
	f.SetCellValue(manifestSheetName, cellRef(2, row), fmt.Sprintf("%d bundles", len(result.Bundles)))
	f.SetCellValue(manifestSheetName, cellRef(4, row), fmt.Sprintf("%d placements", orderPlacements))
	f.SetCellValue(manifestSheetName, cellRef(7, row), orderWeight)
	f.SetRowStyle(manifestSheetName, row, row, totalStyle)

	if len(result.Removed) > 0 {
		row += 2
		f.SetCellValue(manifestSheetName, cellRef(1, row), "Removed SKUs")
		f.SetRowStyle(manifestSheetName, row, row, headerStyle)
		row++
		for _, r := range result.Removed {
			f.SetCellValue(manifestSheetName, cellRef(1, row), r.ID)
			f.SetCellValue(manifestSheetName, cellRef(4, row), r.Width)
			f.SetCellValue(manifestSheetName, cellRef(5, row), r.Height)
			f.SetCellValue(manifestSheetName, cellRef(6, row), r.Length)
			f.SetCellValue(manifestSheetName, cellRef(7, row), r.Reason)
			row++
		}
	}

	for col := 1; col <= len(manifestHeader); col++ {
		colName, _ := excelize.ColumnNumberToName(col)
		f.SetColWidth(manifestSheetName, colName, colName, 14)
	}

	return f.SaveAs(path)
}

func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
