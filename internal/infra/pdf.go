package infra

// pdf.go — internal PDF rendering of the recipe cost report using go-pdf/fpdf.
// Produces an A4 table with one row per recipe: total cost, selling price and
// profit. Recipes without a linked product show "-" for price and profit.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateCostReportPDF renders rows to a timestamped PDF under storagePath
// (created if needed) and returns the absolute path of the written file.
func GenerateCostReportPDF(rows []dto.RecipeProfitResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	now := time.Now().UTC()
	fileName := fmt.Sprintf("cost_report_%s.pdf", now.Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, "Recipe Cost Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, now.Format("02 Jan 2006 15:04 UTC"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.40 // recipe name
	col2 := contentW * 0.20 // cost
	col3 := contentW * 0.20 // selling price
	col4 := contentW * 0.20 // profit

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Recipe", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Cost", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "Profit", "B", 1, "R", false, 0, "")

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		name := row.RecipeName
		if len(name) > 42 {
			name = name[:41] + "…"
		}

		price, profit := "-", "-"
		if row.SellingPrice != nil {
			price = "$" + row.SellingPrice.StringFixed(2)
		}
		if row.Profit != nil {
			profit = "$" + row.Profit.StringFixed(2)
		}

		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "$"+row.TotalCost.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, price, "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, profit, "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d recipes", len(rows)), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
