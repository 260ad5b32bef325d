package render

import (
	"math/rand"

	"github.com/shopspring/decimal"
	"synstatement/pkg/models"
)

// docTypeCodes maps transaction types to the two-letter document codes
// printed in the corporate table.
var docTypeCodes = map[models.TransactionType]string{
	models.TypeInvoice:    "IN",
	models.TypeCreditNote: "CR",
	models.TypePayment:    "PY",
	models.TypeDebitNote:  "DB",
	models.TypeAdjustment: "AD",
}

// renderCulturesGenV lays out the corporate format: grey STATEMENT
// banner, customer-number box, SOLD TO / REMIT TO columns, a
// green-headed six-column document table with alternating row fill, a
// document-type legend, credit limit lines, and an overdue aging strip.
func renderCulturesGenV(stmt *models.Statement, rng *rand.Rand) ([]byte, error) {
	pdf := newLetterDoc()

	// Company name with grey STATEMENT banner
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(95, 8, stmt.Company.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(95, 8, "STATEMENT", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 10)
	for _, line := range addressLines(stmt.Company.Address) {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(5)

	// SOLD TO / REMIT TO columns next to the customer-number box
	soldTo := append([]string{"SOLD TO:", stmt.Customer.Name}, addressLines(stmt.Customer.Address)...)
	remitTo := append([]string{"REMIT TO ADDRESS:", stmt.Company.Name}, addressLines(stmt.Company.Address)...)
	infoBox := [][2]string{
		{"CUSTOMER NO.:", stmt.Customer.AccountCode},
		{"PAGE:", "1"},
		{"DATE:", stmt.Date.Format(models.DateFormat)},
	}

	topY := pdf.GetY()
	rows := len(soldTo)
	if len(remitTo) > rows {
		rows = len(remitTo)
	}
	for i := 0; i < rows; i++ {
		var left, mid string
		if i < len(soldTo) {
			left = soldTo[i]
		}
		if i < len(remitTo) {
			mid = remitTo[i]
		}
		style := ""
		if i == 0 {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		pdf.CellFormat(63, 5, left, "", 0, "L", false, 0, "")
		pdf.CellFormat(63, 5, mid, "", 1, "L", false, 0, "")
	}
	bottomY := pdf.GetY()

	pdf.SetY(topY)
	pdf.SetX(12.7 + 126)
	pdf.SetFont("Arial", "", 9)
	for i, row := range infoBox {
		pdf.SetX(12.7 + 126)
		border := "LR"
		if i == 0 {
			border = "LTR"
		}
		if i == len(infoBox)-1 {
			border = "LBR"
		}
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(38, 6, row[0], border, 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(26, 6, row[1], border, 1, "R", false, 0, "")
	}
	if pdf.GetY() < bottomY {
		pdf.SetY(bottomY)
	}
	pdf.Ln(8)

	// Document table, green header
	colW := []float64{33, 28, 13, 46, 25, 28}
	headers := []string{"DOCUMENT NUMBER", "DOCUMENT DATE", "Type", "REFERENCE/APPLIED NUMBER", "DUE DATE", "AMOUNT"}
	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(74, 124, 60)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		ln := 0
		align := "L"
		if i == len(headers)-1 {
			ln = 1
			align = "R"
		}
		pdf.CellFormat(colW[i], 6, h, "1", ln, align, true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 8)
	pdf.SetFillColor(245, 245, 245)
	for i, t := range stmt.Transactions {
		fill := i%2 == 1
		pdf.CellFormat(colW[0], 6, t.Reference, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[1], 6, t.Date.Format(models.DateFormat), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[2], 6, docTypeCodes[t.Type], "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[3], 6, t.PONumber, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[4], 6, t.DueDate.Format(models.DateFormat), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[5], 6, money(t.SignedAmount()), "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(6)

	// Document-type legend
	pdf.SetFont("Arial", "", 7)
	pdf.SetTextColor(102, 102, 102)
	legend := []string{
		"IN - Invoice    DB - Debit Note    CR - Credit Note    IT - Interest Payable",
		"PY - Applied Receipt    ED - Earned Discount    AD - Adjustment    PI - Prepayment",
		"UC - Unapplied Cash    RF - Refund",
	}
	for _, line := range legend {
		pdf.Cell(0, 4, line)
		pdf.Ln(4)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(5)

	// Credit limit lines
	creditLimit := decimal.NewFromFloat(100000 + rng.Float64()*900000).Round(2)
	creditAvailable := creditLimit.Sub(stmt.TotalDue)
	totals := [][2]string{
		{"Total:", money(stmt.TotalDue)},
		{"Credit Limit:", money(creditLimit)},
		{"Credit Available:", money(creditAvailable)},
	}
	for _, row := range totals {
		pdf.CellFormat(102, 5, "", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(38, 5, row[0], "", 0, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(38, 5, row[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	// Overdue aging strip
	aging := stmt.Aging
	agingW := 43.2
	headersOD := []string{"1 - 30 DAYS O/DUE", "31 - 60 DAYS O/DUE", "61 - 90 DAYS O/DUE", "OVER 90 DAYS O/DUE"}
	valuesOD := []string{
		money(aging.Days1To30), money(aging.Days31To60), money(aging.Days61To90), money(aging.Days90Plus),
	}
	pdf.SetFont("Arial", "", 9)
	for i, h := range headersOD {
		ln := 0
		if i == len(headersOD)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW, 6, h, "T", ln, "C", false, 0, "")
	}
	for i, v := range valuesOD {
		ln := 0
		if i == len(valuesOD)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW, 6, v, "B", ln, "C", false, 0, "")
	}

	return output(pdf)
}
