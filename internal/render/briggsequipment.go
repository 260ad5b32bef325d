package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"synstatement/pkg/models"
)

// renderBriggsEquipment lays out the bold corporate format: dark-red
// banner, REMIT TO / CORRESPONDENCE TO boxes, the aging table at the
// top with the 90+ bucket split 60/40 across 91-150 and 150+ display
// columns, and a transaction table with a days-past-due column.
func renderBriggsEquipment(stmt *models.Statement) ([]byte, error) {
	pdf := newLetterDoc()

	// Banner
	pdf.SetFillColor(139, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(102, 14, " "+strings.ToUpper(stmt.Company.Name), "", 0, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 24)
	pdf.CellFormat(88, 14, "STATEMENT", "", 1, "R", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 5, stmt.Date.Format(models.DateFormat), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, "PAGE 1 OF 1", "", 1, "R", false, 0, "")
	pdf.Ln(3)

	// Remit-to and correspondence boxes on a pale background
	remit := append([]string{"REMIT TO:", stmt.Company.Name}, addressLines(stmt.Company.Address)...)
	correspondence := append([]string{"CORRESPONDENCE TO:", stmt.Company.Name}, addressLines(stmt.Company.Address)...)
	rows := len(remit)
	pdf.SetFillColor(255, 228, 225)
	for i := 0; i < rows; i++ {
		style := ""
		if i == 0 {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		pdf.CellFormat(95, 5, " "+remit[i], "", 0, "L", true, 0, "")
		pdf.CellFormat(95, 5, " "+correspondence[i], "", 1, "L", true, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, "ACCOUNT NUMBER: "+stmt.Customer.AccountCode)
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 5, "SOLD TO")
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, stmt.Customer.Name)
	pdf.Ln(5)
	for _, line := range addressLines(stmt.Customer.Address) {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 5, "QUESTIONS CALL: "+stmt.Company.Phone)
	pdf.Ln(8)

	// Aging table at the TOP of the body, 90+ split across two display
	// columns
	aging := stmt.Aging
	split60 := aging.Days90Plus.Mul(decimal.NewFromFloat(0.6)).Round(2)
	split40 := aging.Days90Plus.Sub(split60)
	agingW := 190.0 / 7
	headersA := []string{"Balance", "CURRENT", "1-30 Days Past Due", "31-60 Days Past Due", "61-90 Days Past Due", "91-150 Days Past Due", "150+ Days Past Due"}
	valuesA := []string{
		"$" + money(stmt.TotalDue),
		"$" + money(aging.Current),
		"$" + money(aging.Days1To30),
		"$" + money(aging.Days31To60),
		"$" + money(aging.Days61To90),
		"$" + money(split60),
		"$" + money(split40),
	}
	pdf.SetFont("Arial", "B", 6)
	pdf.SetFillColor(255, 250, 205)
	for i, h := range headersA {
		ln := 0
		if i == len(headersA)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW, 6, h, "1", ln, "C", true, 0, "")
	}
	pdf.SetFont("Arial", "", 7)
	for i, v := range valuesA {
		ln := 0
		if i == len(valuesA)-1 {
			ln = 1
		}
		pdf.CellFormat(agingW, 6, v, "1", ln, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Transaction table with days past due
	colW := []float64{23, 23, 33, 33, 28, 25, 25}
	headers := []string{"INVOICED", "DUE", "INVOICE REFERENCES", "CUSTOMER REF. NO.", "INVOICE AMOUNT", "BALANCE DUE", "PAST DUE"}
	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(255, 255, 224)
	for i, h := range headers {
		ln := 0
		align := "L"
		if i >= 4 {
			align = "R"
		}
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(colW[i], 6, h, "1", ln, align, true, 0, "")
	}

	pdf.SetFont("Arial", "", 8)
	pdf.SetFillColor(255, 248, 220)
	for i, t := range stmt.Transactions {
		daysPast := int(stmt.Date.Sub(t.Date).Hours() / 24)
		pastDueStr := ""
		if daysPast > 0 {
			pastDueStr = fmt.Sprintf("%d DAYS", daysPast)
		}
		fill := i%2 == 1
		pdf.CellFormat(colW[0], 6, t.Date.Format(models.DateFormat), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[1], 6, t.DueDate.Format(models.DateFormat), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[2], 6, t.Reference, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[3], 6, t.PONumber, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colW[4], 6, money(t.SignedAmount()), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colW[5], 6, money(t.BalanceAfter), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colW[6], 6, pastDueStr, "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(102, 102, 102)
	pdf.Cell(0, 4, "Terms: Net 30 Days, unless otherwise prior specified in writing.")
	pdf.Ln(4)
	pdf.Cell(0, 4, "Invoices are deemed correct unless errors are reported in writing within 15 days of invoice date.")
	pdf.Ln(8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 6, "We Appreciate Your Business!", "", 1, "C", false, 0, "")

	return output(pdf)
}
