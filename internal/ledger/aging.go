package ledger

import (
	"time"

	"synstatement/pkg/models"
)

// CalculateAging classifies all debit transactions into aging buckets by
// age relative to now and accumulates their amounts. Non-debit
// transactions are ignored entirely, so a large credit-side exposure does
// not appear in the aging report. Pure function of its inputs.
func CalculateAging(transactions []models.Transaction, now time.Time) models.AgingSnapshot {
	var aging models.AgingSnapshot

	for _, t := range transactions {
		if !t.IsDebit {
			continue
		}
		ageDays := int(now.Sub(t.Date).Hours() / 24)
		switch {
		case ageDays <= 0:
			aging.Current = aging.Current.Add(t.Amount)
		case ageDays <= 30:
			aging.Days1To30 = aging.Days1To30.Add(t.Amount)
		case ageDays <= 60:
			aging.Days31To60 = aging.Days31To60.Add(t.Amount)
		case ageDays <= 90:
			aging.Days61To90 = aging.Days61To90.Add(t.Amount)
		default:
			aging.Days90Plus = aging.Days90Plus.Add(t.Amount)
		}
	}

	return aging
}
