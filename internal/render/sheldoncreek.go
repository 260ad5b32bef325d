package render

import (
	"strings"

	"synstatement/pkg/models"
)

// renderSheldonCreek lays out the clean professional format: company
// block top-left, two-column TO/statement-info section, a four-column
// transaction table, and the aging strip at the bottom.
func renderSheldonCreek(stmt *models.Statement) ([]byte, error) {
	pdf := newLetterDoc()

	// Company header, top-left
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 5, stmt.Company.Name)
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	for _, line := range addressLines(stmt.Company.Address) {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, stmt.Company.Phone)
	pdf.Ln(5)
	pdf.Cell(0, 5, stmt.Company.Email)
	pdf.Ln(5)
	if stmt.Company.Website != "" {
		pdf.Cell(0, 5, stmt.Company.Website)
		pdf.Ln(5)
	}
	pdf.Ln(6)

	// Statement title
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(51, 51, 51)
	pdf.Cell(0, 10, "Statement")
	pdf.Ln(14)
	pdf.SetTextColor(0, 0, 0)

	// TO block and statement info side by side
	leftLines := append([]string{"TO", stmt.Customer.Name}, addressLines(stmt.Customer.Address)...)
	rightLines := []string{
		"STATEMENT NO.  " + stmt.Number,
		"DATE  " + stmt.Date.Format(models.DateFormat),
		"TOTAL DUE  $ " + money(stmt.TotalDue),
		"ENCLOSED",
	}
	rows := len(leftLines)
	if len(rightLines) > rows {
		rows = len(rightLines)
	}
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(leftLines) {
			left = leftLines[i]
		}
		if i < len(rightLines) {
			right = rightLines[i]
		}
		style := ""
		if i == 0 {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(95, 5, left, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(95, 5, right, "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Transaction table
	colW := []float64{30, 77, 33, 33}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(224, 224, 224)
	pdf.CellFormat(colW[0], 6, "DATE", "B", 0, "L", true, 0, "")
	pdf.CellFormat(colW[1], 6, "DESCRIPTION", "B", 0, "L", true, 0, "")
	pdf.CellFormat(colW[2], 6, "AMOUNT", "B", 0, "R", true, 0, "")
	pdf.CellFormat(colW[3], 6, "OPEN AMOUNT", "B", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i, t := range stmt.Transactions {
		border := ""
		if i == len(stmt.Transactions)-1 {
			border = "B"
		}
		pdf.CellFormat(colW[0], 6, t.Date.Format(models.DateFormat), border, 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 6, t.Description, border, 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 6, money(t.SignedAmount()), border, 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 6, money(t.BalanceAfter), border, 1, "R", false, 0, "")
	}
	pdf.Ln(20)

	// Aging strip
	aging := stmt.Aging
	agingW := []float64{25.4, 25.4, 25.4, 25.4, 25.4, 12.7, 33}
	headers := []string{"Current Due", "1-30 Days", "31-60 Days", "61-90 Days", "90+ Days", "", "Amount Due"}
	values := []string{
		money(aging.Current), money(aging.Days1To30), money(aging.Days31To60),
		money(aging.Days61To90), money(aging.Days90Plus), "", "$ " + money(stmt.TotalDue),
	}
	pdf.SetFont("Arial", "", 9)
	for i, h := range headers {
		border := "T"
		if h == "" {
			border = ""
		}
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW[i], 6, h, border, ln, "C", false, 0, "")
	}
	for i, v := range values {
		border := "B"
		if v == "" {
			border = ""
		}
		ln := 0
		if i == len(values)-1 {
			ln = 1
			pdf.SetFont("Arial", "B", 9)
			pdf.SetTextColor(204, 0, 0)
		}
		pdf.CellFormat(agingW[i], 6, v, border, ln, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(8)

	// Footer
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 5, "THANK YOU FOR YOUR ORDER!", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "Please ensure payments are made payable to:", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, strings.ToUpper(stmt.Company.Name), "", 1, "C", false, 0, "")

	return output(pdf)
}
