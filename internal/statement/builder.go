// Package statement assembles statement aggregates and projects
// ground-truth records from them.
package statement

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"synstatement/internal/entity"
	"synstatement/internal/ledger"
	"synstatement/pkg/models"
)

// DefaultTransactionCount is the transaction count used when none is
// requested.
const DefaultTransactionCount = 10

// BuildOptions controls statement assembly.
type BuildOptions struct {
	// TransactionCount is the number of transactions to synthesize.
	// Values below one fall back to DefaultTransactionCount.
	TransactionCount int

	// Now anchors the statement date and aging calculation. Zero means
	// the wall clock.
	Now time.Time
}

// Build assembles one statement: a company from the source, a customer
// from the static pool, a random opening balance in [0, 10000], the
// synthesized ledger, and its aging breakdown. The returned statement is
// immutable from the caller's perspective.
func Build(ctx context.Context, source entity.CompanySource, pool *entity.StaticPool, rng *rand.Rand, opts BuildOptions) *models.Statement {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	count := opts.TransactionCount
	if count < 1 {
		count = DefaultTransactionCount
	}

	company, err := source.FetchCompany(ctx)
	if err != nil {
		// Sources fall back internally; the pool itself never fails.
		company, _ = pool.FetchCompany(ctx)
	}
	customer := pool.Customer()

	opening := decimal.NewFromFloat(rng.Float64() * 10000).Round(2)
	transactions, closing := ledger.NewSynthesizer(rng).Synthesize(opening, count, now)
	aging := ledger.CalculateAging(transactions, now)

	return &models.Statement{
		Company:        company,
		Customer:       customer,
		Number:         fmt.Sprintf("%d", 10000+rng.Intn(90000)),
		Date:           now,
		OpeningBalance: opening,
		Transactions:   transactions,
		TotalDue:       closing,
		Aging:          aging,
	}
}
