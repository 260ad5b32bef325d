package render

import (
	"strings"

	"github.com/shopspring/decimal"
	"synstatement/pkg/models"
)

// renderComeauSeaFoods lays out the bold blue-branded format. The table
// shows separate debit and credit columns with a running balance
// recomputed from zero, and the aging summary merges the current and
// 1-30 buckets into one column.
func renderComeauSeaFoods(stmt *models.Statement) ([]byte, error) {
	pdf := newLetterDoc()

	// Prominent company branding
	pdf.SetFont("Arial", "B", 22)
	pdf.SetTextColor(0, 102, 204)
	pdf.Cell(0, 10, stmt.Company.Name)
	pdf.Ln(11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	for _, line := range addressLines(stmt.Company.Address) {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	fax := strings.Replace(stmt.Company.Phone, "555", "556", 1)
	pdf.Cell(0, 5, "Tel: "+stmt.Company.Phone+"  Fax: "+fax)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 102, 204)
	pdf.CellFormat(0, 9, "STATEMENT", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(5)

	// Customer block and statement info side by side
	leftLines := append([]string{stmt.Customer.Name}, addressLines(stmt.Customer.Address)...)
	rightLines := []string{
		"Cust Name: " + stmt.Customer.Name,
		"Statement Date: " + stmt.Date.Format(models.DateFormat),
		"Account #: " + stmt.Customer.AccountCode,
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
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(95, 5, right, "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Debit/credit table with running balance from zero
	colW := []float64{36, 30, 33, 33, 41}
	headers := []string{"Invoice", "Invoice Date", "Debit", "Credit", "Balance"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(232, 232, 232)
	for i, h := range headers {
		ln := 0
		align := "L"
		if i >= 2 {
			align = "R"
		}
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(colW[i], 6, h, "B", ln, align, true, 0, "")
	}

	pdf.SetFont("Arial", "", 9)
	running := decimal.Zero
	for _, t := range stmt.Transactions {
		var debitStr, creditStr string
		if t.IsDebit {
			debitStr = money(t.Amount)
			running = running.Add(t.Amount)
		} else {
			creditStr = money(t.Amount)
			running = running.Sub(t.Amount)
		}
		pdf.CellFormat(colW[0], 6, t.Reference, "", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 6, t.Date.Format(models.DateFormat), "", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 6, debitStr, "", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 6, creditStr, "", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 6, money(running), "", 1, "R", false, 0, "")
	}
	pdf.Ln(12)

	// Aging summary, current merged with 1-30
	aging := stmt.Aging
	agingW := []float64{36, 36, 36, 36, 30}
	headersA := []string{"Balance Due", "0 - 30 Days", "30 - 60 Days", "60 - 90 Days", "Over 90 Days"}
	valuesA := []string{
		money(stmt.TotalDue),
		money(aging.Current.Add(aging.Days1To30)),
		money(aging.Days31To60),
		money(aging.Days61To90),
		money(aging.Days90Plus),
	}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range headersA {
		border := "T"
		if i == 0 {
			border = "1"
		}
		ln := 0
		if i == len(headersA)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW[i], 6, h, border, ln, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "", 9)
	for i, v := range valuesA {
		border := "B"
		if i == 0 {
			border = "1"
		}
		ln := 0
		if i == len(valuesA)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW[i], 6, v, border, ln, "C", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.Cell(0, 5, "INTEREST AT THE RATE OF 2% WILL BE CHARGED ON UNPAID BALANCE")

	return output(pdf)
}
