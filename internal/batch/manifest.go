package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// writeManifest renders the run summary as an XLSX workbook with a
// summary sheet and one row per statement on a statements sheet.
func writeManifest(path, runID string, opts Options, results []unitResult) error {
	f := excelize.NewFile()
	summarySheet := "summary"
	statementsSheet := "statements"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(statementsSheet); err != nil {
		return fmt.Errorf("failed to create statements sheet: %w", err)
	}

	succeeded := 0
	for _, res := range results {
		if res.err == nil {
			succeeded++
		}
	}

	_ = f.SetCellValue(summarySheet, "A1", "Statement Generation Run")
	_ = f.SetCellValue(summarySheet, "A3", "Run ID")
	_ = f.SetCellValue(summarySheet, "B3", runID)
	_ = f.SetCellValue(summarySheet, "A4", "Generated At")
	_ = f.SetCellValue(summarySheet, "B4", time.Now().Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A5", "Output Directory")
	_ = f.SetCellValue(summarySheet, "B5", opts.OutputDir)
	_ = f.SetCellValue(summarySheet, "A6", "Requested")
	_ = f.SetCellValue(summarySheet, "B6", len(results))
	_ = f.SetCellValue(summarySheet, "A7", "Succeeded")
	_ = f.SetCellValue(summarySheet, "B7", succeeded)
	_ = f.SetCellValue(summarySheet, "A8", "Failed")
	_ = f.SetCellValue(summarySheet, "B8", len(results)-succeeded)

	headers := []string{"Index", "File", "Style", "Statement No.", "Company", "Customer", "Transactions", "Total Due", "Ground Truth", "Status"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(statementsSheet, cell, h)
	}

	for i, res := range results {
		row := i + 2
		status := "success"
		if res.err != nil {
			status = "error: " + res.err.Error()
		}
		values := []interface{}{
			res.index + 1,
			filepath.Base(res.path),
			string(res.style),
			"", "", "", "", "",
			"",
			status,
		}
		if res.gtPath != "" {
			values[8] = filepath.Base(res.gtPath)
		}
		if res.built != nil {
			values[3] = res.built.number
			values[4] = res.built.company
			values[5] = res.built.customer
			values[6] = res.built.transactions
			values[7] = res.built.totalDue
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(statementsSheet, cell, v)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save manifest: %w", err)
	}
	return nil
}
