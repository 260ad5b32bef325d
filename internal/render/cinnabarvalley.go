package render

import (
	"math/rand"
	"strings"

	"synstatement/pkg/models"
)

// renderCinnabarValley lays out the minimalist professional format:
// phone/fax/web header, a CREDIT LIMIT line, and a seven-column table
// with PO and Net 30 Days terms columns.
func renderCinnabarValley(stmt *models.Statement, rng *rand.Rand) ([]byte, error) {
	pdf := newLetterDoc()

	// Header row: company name and right-aligned title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(114, 9, stmt.Company.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(76, 9, "Statement", "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Company details left, date and account right
	fax := strings.Replace(stmt.Company.Phone, "555", "556", 1)
	leftLines := append(addressLines(stmt.Company.Address),
		"Phone: "+stmt.Company.Phone+"  Fax: "+fax,
		stmt.Company.Website,
		"",
		stmt.Company.Email,
	)
	rightLines := []string{
		stmt.Date.Format(models.DateFormat),
		"",
		"Page 1 of 1",
		"",
		stmt.Customer.AccountCode,
	}
	rows := len(leftLines)
	if len(rightLines) > rows {
		rows = len(rightLines)
	}
	pdf.SetFont("Arial", "", 9)
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(leftLines) {
			left = leftLines[i]
		}
		if i < len(rightLines) {
			right = rightLines[i]
		}
		pdf.CellFormat(114, 5, left, "", 0, "L", false, 0, "")
		pdf.CellFormat(76, 5, right, "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Customer block
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 5, stmt.Customer.Name)
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	for _, line := range addressLines(stmt.Customer.Address) {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(6)

	creditLimit := 5000 + rng.Float64()*45000
	pdf.Cell(0, 5, "CREDIT LIMIT    "+moneyFloat(creditLimit))
	pdf.Ln(8)

	// Transaction table with PO and terms columns
	colW := []float64{20, 26, 30, 30, 26, 28, 30}
	headers := []string{"Date", "Description", "Invoice #", "PO#", "Terms", "Amount", "Outstanding"}
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(232, 232, 232)
	for i, h := range headers {
		ln := 0
		align := "L"
		if i >= 5 {
			align = "R"
		}
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(colW[i], 6, h, "B", ln, align, true, 0, "")
	}

	pdf.SetFont("Arial", "", 8)
	for _, t := range stmt.Transactions {
		desc := "Invoice"
		if !t.IsDebit {
			desc = "Credit memo"
		}
		date := strings.ReplaceAll(t.Date.Format(models.DateFormat), "/", " ")
		pdf.CellFormat(colW[0], 5, date, "", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 5, desc, "", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 5, t.Reference, "", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 5, t.PONumber, "", 0, "L", false, 0, "")
		pdf.CellFormat(colW[4], 5, "Net 30 Days", "", 0, "L", false, 0, "")
		pdf.CellFormat(colW[5], 5, money(t.SignedAmount()), "", 0, "R", false, 0, "")
		pdf.CellFormat(colW[6], 5, money(t.BalanceAfter), "", 1, "R", false, 0, "")
	}
	pdf.Ln(12)

	// Aging strip at bottom
	aging := stmt.Aging
	agingW := []float64{25.4, 25.4, 25.4, 25.4, 25.4, 12.7, 33}
	headersA := []string{"Current", "Over 30", "Over 60", "Over 90", "Over 120", "", "Total Due"}
	valuesA := []string{
		money(aging.Current), money(aging.Days1To30), money(aging.Days31To60),
		money(aging.Days61To90), money(aging.Days90Plus), "", money(stmt.TotalDue),
	}
	pdf.SetFont("Arial", "", 9)
	for i, h := range headersA {
		border := "T"
		if h == "" {
			border = ""
		}
		ln := 0
		if i == len(headersA)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW[i], 6, h, border, ln, "C", false, 0, "")
	}
	for i, v := range valuesA {
		border := "B"
		if v == "" {
			border = ""
		}
		ln := 0
		if i == len(valuesA)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW[i], 6, v, border, ln, "C", false, 0, "")
	}

	return output(pdf)
}
