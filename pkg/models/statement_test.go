package models_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"synstatement/pkg/models"
)

func TestTransactionTypePrefix(t *testing.T) {
	tests := []struct {
		txType models.TransactionType
		want   string
	}{
		{models.TypeInvoice, "INV"},
		{models.TypeCreditNote, "CN"},
		{models.TypePayment, "PY"},
		{models.TypeDebitNote, "DN"},
		{models.TypeAdjustment, "ADJ"},
		{models.TransactionType("refund"), ""},
	}

	for _, tt := range tests {
		if got := tt.txType.Prefix(); got != tt.want {
			t.Errorf("Prefix(%q) = %q, want %q", tt.txType, got, tt.want)
		}
	}
}

func TestTransactionTypePolarity(t *testing.T) {
	tests := []struct {
		txType      models.TransactionType
		isDebit     bool
		determinate bool
	}{
		{models.TypeInvoice, true, true},
		{models.TypeDebitNote, true, true},
		{models.TypeCreditNote, false, true},
		{models.TypePayment, false, true},
		{models.TypeAdjustment, false, false},
	}

	for _, tt := range tests {
		isDebit, determinate := tt.txType.Polarity()
		if isDebit != tt.isDebit || determinate != tt.determinate {
			t.Errorf("Polarity(%q) = (%v, %v), want (%v, %v)",
				tt.txType, isDebit, determinate, tt.isDebit, tt.determinate)
		}
	}
}

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromFloat(250.75)

	debit := models.Transaction{Amount: amount, IsDebit: true}
	if !debit.SignedAmount().Equal(amount) {
		t.Errorf("debit signed amount = %s, want %s", debit.SignedAmount(), amount)
	}

	credit := models.Transaction{Amount: amount, IsCredit: true}
	if !credit.SignedAmount().Equal(amount.Neg()) {
		t.Errorf("credit signed amount = %s, want %s", credit.SignedAmount(), amount.Neg())
	}
}

func TestAgingSnapshotTotal(t *testing.T) {
	aging := models.AgingSnapshot{
		Current:    decimal.NewFromInt(100),
		Days1To30:  decimal.NewFromInt(200),
		Days31To60: decimal.NewFromInt(300),
		Days61To90: decimal.NewFromInt(400),
		Days90Plus: decimal.NewFromInt(500),
	}

	if !aging.Total().Equal(decimal.NewFromInt(1500)) {
		t.Errorf("total = %s, want 1500", aging.Total())
	}

	var empty models.AgingSnapshot
	if !empty.Total().IsZero() {
		t.Errorf("empty total = %s, want 0", empty.Total())
	}
}

func TestGroundTruthAmountSerialization(t *testing.T) {
	gt := models.GroundTruth{
		Balances: models.GroundTruthBalances{
			TotalDue: decimal.NewFromFloat(1234.50),
		},
	}

	data, err := json.Marshal(gt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Balances struct {
			TotalDue json.RawMessage `json:"total_due"`
		} `json:"balances"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded.Balances.TotalDue) != `"1234.5"` {
		t.Errorf("total_due serialized as %s, want a quoted decimal string", decoded.Balances.TotalDue)
	}
}
