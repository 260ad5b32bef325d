package statement_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"synstatement/internal/entity"
	"synstatement/internal/statement"
	"synstatement/pkg/models"
)

func fixtureStatement() *models.Statement {
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	return &models.Statement{
		Company:  models.Company{Name: "Maple Grove Distributors Inc.", Address: "100 Industry Rd\nToronto, ON M1B 2C3"},
		Customer: models.Customer{Name: "Corner Store Co.", Address: "5 Main St\nGuelph, ON N1H 1A1", AccountCode: "ACC-1001"},
		Number:   "48210",
		Date:     date,
		Transactions: []models.Transaction{
			{
				Date: date.AddDate(0, 0, -40), Type: models.TypeInvoice, Reference: "INV10001",
				Description: "Product delivery", Amount: decimal.NewFromFloat(1500.00),
				IsDebit: true, BalanceAfter: decimal.NewFromFloat(1500.00),
			},
			{
				Date: date.AddDate(0, 0, -20), Type: models.TypeCreditNote, Reference: "CN20002",
				Description: "Returned goods", Amount: decimal.NewFromFloat(200.00),
				IsCredit: true, BalanceAfter: decimal.NewFromFloat(1300.00),
			},
			{
				Date: date.AddDate(0, 0, -10), Type: models.TypePayment, Reference: "PY30003",
				Description: "Payment received", Amount: decimal.NewFromFloat(800.00),
				IsCredit: true, BalanceAfter: decimal.NewFromFloat(500.00),
			},
		},
		TotalDue: decimal.NewFromFloat(500.00),
		Aging:    models.AgingSnapshot{Days31To60: decimal.NewFromFloat(1500.00)},
	}
}

func TestProjectIdempotence(t *testing.T) {
	stmt := fixtureStatement()
	p := statement.Projector{
		RunID:       "run-1",
		GeneratedAt: time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC),
	}

	first := p.Project(stmt, "SheldonCreek")
	second := p.Project(stmt, "SheldonCreek")

	if !reflect.DeepEqual(first, second) {
		t.Error("projecting the same statement twice yielded different records")
	}
}

func TestProjectLabels(t *testing.T) {
	stmt := fixtureStatement()
	gt := statement.Projector{}.Project(stmt, "CulturesGenV")

	if gt.Labels.NumTransactions != 3 {
		t.Errorf("num_transactions = %d, want 3", gt.Labels.NumTransactions)
	}
	if gt.Labels.NumCredits != 2 {
		t.Errorf("num_credits = %d, want 2", gt.Labels.NumCredits)
	}
	if !gt.Labels.TotalDebitAmount.Equal(decimal.NewFromFloat(1500.00)) {
		t.Errorf("total_debit_amount = %s, want 1500", gt.Labels.TotalDebitAmount)
	}
	if !gt.Labels.TotalCreditAmount.Equal(decimal.NewFromFloat(1000.00)) {
		t.Errorf("total_credit_amount = %s, want 1000", gt.Labels.TotalCreditAmount)
	}

	counts := gt.Labels.TransactionTypes
	if counts.Invoices != 1 || counts.CreditNotes != 1 || counts.Payments != 1 || counts.DebitNotes != 0 {
		t.Errorf("transaction type counts = %+v", counts)
	}

	wantRefs := []string{"CN20002", "PY30003"}
	for i, item := range gt.Labels.CreditItems {
		if item.Reference != wantRefs[i] {
			t.Errorf("credit item %d reference = %q, want %q", i, item.Reference, wantRefs[i])
		}
	}
	if gt.Metadata.StatementDate != "15/06/2024" {
		t.Errorf("statement_date = %q, want 15/06/2024", gt.Metadata.StatementDate)
	}
}

// Transactions flagged both debit and credit count toward the debit total
// but never appear as credit items.
func TestProjectIndeterminateDirection(t *testing.T) {
	stmt := fixtureStatement()
	stmt.Transactions = append(stmt.Transactions, models.Transaction{
		Date: stmt.Date.AddDate(0, 0, -5), Type: models.TypeAdjustment, Reference: "ADJ40004",
		Description: "Price adjustment", Amount: decimal.NewFromFloat(75.00),
		IsDebit: true, IsCredit: true,
	})

	gt := statement.Projector{}.Project(stmt, "ComeauSeaFoods")

	if gt.Labels.NumCredits != 2 {
		t.Errorf("num_credits = %d, want 2 (indeterminate row counted as credit)", gt.Labels.NumCredits)
	}
	if !gt.Labels.TotalDebitAmount.Equal(decimal.NewFromFloat(1575.00)) {
		t.Errorf("total_debit_amount = %s, want 1575", gt.Labels.TotalDebitAmount)
	}
	if gt.Labels.NumTransactions != 4 {
		t.Errorf("num_transactions = %d, want 4", gt.Labels.NumTransactions)
	}
}

func TestProjectEmptyStatement(t *testing.T) {
	stmt := fixtureStatement()
	stmt.Transactions = nil
	stmt.TotalDue = decimal.Zero

	gt := statement.Projector{}.Project(stmt, "CinnabarValley")

	if gt.Labels.NumTransactions != 0 || gt.Labels.NumCredits != 0 {
		t.Errorf("counts = %d/%d, want 0/0", gt.Labels.NumTransactions, gt.Labels.NumCredits)
	}
	if !gt.Labels.TotalCreditAmount.IsZero() || !gt.Labels.TotalDebitAmount.IsZero() {
		t.Errorf("sums = %s/%s, want 0/0", gt.Labels.TotalCreditAmount, gt.Labels.TotalDebitAmount)
	}
	if gt.Labels.CreditItems == nil || gt.Transactions == nil {
		t.Error("empty lists must serialize as [] rather than null")
	}
}

func TestWriteGroundTruthRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement_001_SheldonCreek_ground_truth.json")
	p := statement.Projector{
		RunID:       "run-42",
		GeneratedAt: time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC),
	}
	gt := p.Project(fixtureStatement(), "SheldonCreek")

	if err := statement.WriteGroundTruth(path, gt); err != nil {
		t.Fatalf("WriteGroundTruth: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"metadata", "company", "customer", "balances", "transactions", "ground_truth_labels"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("serialized record missing %q", key)
		}
	}

	var roundTrip models.GroundTruth
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("unmarshal into struct: %v", err)
	}
	if roundTrip.Metadata.GeneratorRunID != "run-42" {
		t.Errorf("generator_run_id = %q, want run-42", roundTrip.Metadata.GeneratorRunID)
	}
	if !roundTrip.Balances.TotalDue.Equal(gt.Balances.TotalDue) {
		t.Errorf("total_due = %s, want %s", roundTrip.Balances.TotalDue, gt.Balances.TotalDue)
	}
}

func TestBuildStatement(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	pool := entity.NewStaticPool(rng)
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	stmt := statement.Build(context.Background(), pool, pool, rng, statement.BuildOptions{
		TransactionCount: 15,
		Now:              now,
	})

	if len(stmt.Transactions) != 15 {
		t.Fatalf("got %d transactions, want 15", len(stmt.Transactions))
	}
	if stmt.Company.Name == "" || stmt.Customer.Name == "" {
		t.Error("company or customer missing")
	}
	if stmt.Customer.AccountCode == "" {
		t.Error("customer has no account code")
	}
	if !stmt.Date.Equal(now) {
		t.Errorf("statement date = %v, want %v", stmt.Date, now)
	}
	if stmt.OpeningBalance.IsNegative() || stmt.OpeningBalance.GreaterThan(decimal.NewFromInt(10000)) {
		t.Errorf("opening balance %s outside [0, 10000]", stmt.OpeningBalance)
	}
	if len(stmt.Number) != 5 {
		t.Errorf("statement number %q, want five digits", stmt.Number)
	}

	last := stmt.Transactions[len(stmt.Transactions)-1]
	if !stmt.TotalDue.Equal(last.BalanceAfter) {
		t.Errorf("total due %s != final balance %s", stmt.TotalDue, last.BalanceAfter)
	}
}

func TestBuildDefaultTransactionCount(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	pool := entity.NewStaticPool(rng)

	stmt := statement.Build(context.Background(), pool, pool, rng, statement.BuildOptions{})

	if len(stmt.Transactions) != statement.DefaultTransactionCount {
		t.Errorf("got %d transactions, want %d", len(stmt.Transactions), statement.DefaultTransactionCount)
	}
}
