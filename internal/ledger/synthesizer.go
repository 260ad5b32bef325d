// Package ledger synthesizes realistic transaction ledgers for supplier
// statements and derives aging breakdowns from them.
//
// Amounts are sized against a provisional running balance so payments and
// credits look plausible relative to outstanding exposure, but the final
// per-transaction balances are always recomputed by a single fold over the
// date-sorted sequence. The provisional figures only influence magnitudes.
package ledger

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"synstatement/pkg/models"
)

// descriptions is the fixed vocabulary for transaction labels. The entries
// carry no semantic meaning.
var descriptions = []string{
	"Product delivery", "Service charges", "Shipping and handling",
	"Monthly supplies", "Equipment rental", "Maintenance fees",
	"Raw materials", "Packaging supplies", "Quality inspection",
	"Storage fees", "Transportation", "Processing charges",
	"Damage claim", "Returned goods", "Price adjustment",
	"Volume discount", "Early payment discount", "Late fee waiver",
}

// Synthesizer generates chronologically ordered synthetic transactions.
// Each instance carries its own random source; batch callers create one
// synthesizer per unit of work so units stay independent.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer using the provided random source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Synthesize generates count transactions dated within the 90 days
// preceding now, sorted by date ascending, with running balances folded
// from openingBalance. It returns the sorted transactions and the closing
// balance. A zero count yields an empty sequence and closing == opening.
func (s *Synthesizer) Synthesize(openingBalance decimal.Decimal, count int, now time.Time) ([]models.Transaction, decimal.Decimal) {
	transactions := make([]models.Transaction, 0, count)
	provisional := openingBalance
	baseDate := now.AddDate(0, 0, -90)

	for i := 0; i < count; i++ {
		date := baseDate.AddDate(0, 0, 1+s.rng.Intn(90))
		txType := s.pickType()
		amount := s.amountFor(txType, provisional)

		isDebit, _ := txType.Polarity()
		if isDebit {
			provisional = provisional.Add(amount)
		} else {
			provisional = provisional.Sub(amount)
		}

		transactions = append(transactions, models.Transaction{
			Date:        date,
			Type:        txType,
			Reference:   fmt.Sprintf("%s%d", txType.Prefix(), 10000+s.rng.Intn(90000)),
			Description: descriptions[s.rng.Intn(len(descriptions))],
			Amount:      amount,
			IsDebit:     isDebit,
			IsCredit:    !isDebit,
			PONumber:    s.poNumber(),
			DueDate:     date.AddDate(0, 0, models.PaymentTermDays),
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	// The provisional balances only sized the amounts. The authoritative
	// balances come from one clean fold over the sorted sequence.
	balance := openingBalance
	for i := range transactions {
		balance = balance.Add(transactions[i].SignedAmount())
		transactions[i].BalanceAfter = balance
	}

	return transactions, balance
}

// pickType draws a transaction type with weights
// invoice 50%, credit note 15%, payment 25%, debit note 10%.
func (s *Synthesizer) pickType() models.TransactionType {
	r := s.rng.Float64()
	switch {
	case r < 0.50:
		return models.TypeInvoice
	case r < 0.65:
		return models.TypeCreditNote
	case r < 0.90:
		return models.TypePayment
	default:
		return models.TypeDebitNote
	}
}

// amountFor sizes an amount for the given type against the provisional
// balance:
//
//	invoice:     uniform [100, 25000]
//	credit note: uniform [10, max(50, min(balance*0.3, 5000))],
//	             falling back to a 500 upper bound when balance <= 0
//	payment:     uniform [balance*0.1, balance*0.8] when balance > 0,
//	             else uniform [100, 5000]
//	debit note:  uniform [10, 500]
func (s *Synthesizer) amountFor(txType models.TransactionType, balance decimal.Decimal) decimal.Decimal {
	switch txType {
	case models.TypeInvoice:
		return s.uniform(100, 25000)
	case models.TypeCreditNote:
		maxCredit := 500.0
		if balance.IsPositive() {
			bal, _ := balance.Float64()
			maxCredit = math.Min(bal*0.3, 5000)
		}
		return s.uniform(10, math.Max(50, maxCredit))
	case models.TypePayment:
		if balance.IsPositive() {
			bal, _ := balance.Float64()
			return s.uniform(bal*0.1, bal*0.8)
		}
		return s.uniform(100, 5000)
	default:
		return s.uniform(10, 500)
	}
}

// uniform draws from the continuous range [lo, hi) and rounds half up to
// two decimal places.
func (s *Synthesizer) uniform(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(lo + s.rng.Float64()*(hi-lo)).Round(2)
}

// poNumber returns a synthetic purchase-order reference roughly 70% of
// the time, otherwise an empty string.
func (s *Synthesizer) poNumber() string {
	if s.rng.Float64() > 0.3 {
		return fmt.Sprintf("PO%d", 100000+s.rng.Intn(900000))
	}
	return ""
}
