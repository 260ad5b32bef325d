package statement

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"synstatement/pkg/models"
)

// Projector derives ground-truth records from statement aggregates. The
// projection is a pure, deterministic transformation: calling it twice on
// the same statement yields structurally equal records.
type Projector struct {
	// RunID identifies the batch run that produced the statement, if any.
	RunID string

	// GeneratedAt is recorded in the ground-truth metadata.
	GeneratedAt time.Time
}

// Project derives the ground-truth record for a statement rendered with
// the given style label. An empty transaction list yields zero counts and
// zero sums; it never fails.
func (p Projector) Project(stmt *models.Statement, styleLabel string) models.GroundTruth {
	var totalDebits, totalCredits decimal.Decimal
	var counts models.TransactionTypeCounts
	creditItems := make([]models.GroundTruthCreditItem, 0)
	transactions := make([]models.GroundTruthTransaction, 0, len(stmt.Transactions))

	for _, t := range stmt.Transactions {
		transactions = append(transactions, models.GroundTruthTransaction{
			Date:         t.Date.Format(models.DateFormat),
			Type:         t.Type,
			Reference:    t.Reference,
			Description:  t.Description,
			Amount:       t.Amount,
			BalanceAfter: t.BalanceAfter,
			IsCredit:     t.IsCredit,
			IsDebit:      t.IsDebit,
			PONumber:     t.PONumber,
			DueDate:      t.DueDate.Format(models.DateFormat),
		})

		if t.IsDebit {
			totalDebits = totalDebits.Add(t.Amount)
		}
		// The asymmetric test excludes transactions whose debit/credit
		// direction is indeterminate from the credit labels.
		if t.IsCredit && !t.IsDebit {
			totalCredits = totalCredits.Add(t.Amount)
			creditItems = append(creditItems, models.GroundTruthCreditItem{
				Reference:   t.Reference,
				Date:        t.Date.Format(models.DateFormat),
				Amount:      t.Amount,
				Type:        t.Type,
				Description: t.Description,
			})
		}

		switch t.Type {
		case models.TypeInvoice:
			counts.Invoices++
		case models.TypeCreditNote:
			counts.CreditNotes++
		case models.TypePayment:
			counts.Payments++
		case models.TypeDebitNote:
			counts.DebitNotes++
		}
	}

	return models.GroundTruth{
		Metadata: models.GroundTruthMetadata{
			StatementNumber: stmt.Number,
			StatementDate:   stmt.Date.Format(models.DateFormat),
			PDFStyle:        styleLabel,
			GeneratedAt:     p.GeneratedAt.Format(time.RFC3339),
			GeneratorRunID:  p.RunID,
		},
		Company:  stmt.Company,
		Customer: stmt.Customer,
		Balances: models.GroundTruthBalances{
			TotalDue: stmt.TotalDue,
			Aging: models.GroundTruthAging{
				Current:    stmt.Aging.Current,
				Days1To30:  stmt.Aging.Days1To30,
				Days31To60: stmt.Aging.Days31To60,
				Days61To90: stmt.Aging.Days61To90,
				Days90Plus: stmt.Aging.Days90Plus,
			},
		},
		Transactions: transactions,
		Labels: models.GroundTruthLabels{
			CreditItems:       creditItems,
			NumCredits:        len(creditItems),
			TotalCreditAmount: totalCredits,
			TotalDebitAmount:  totalDebits,
			NumTransactions:   len(stmt.Transactions),
			TransactionTypes:  counts,
		},
	}
}

// WriteGroundTruth persists a ground-truth record as indented JSON.
func WriteGroundTruth(path string, gt models.GroundTruth) error {
	data, err := json.MarshalIndent(gt, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ground truth: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ground truth: %w", err)
	}
	return nil
}
