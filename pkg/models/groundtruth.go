package models

import "github.com/shopspring/decimal"

// GroundTruth is the answer-key record paired with a rendered statement.
// It is a value copy derived from a Statement; it never aliases or
// mutates its source. Decimal fields serialize as fixed-point strings.
type GroundTruth struct {
	Metadata     GroundTruthMetadata      `json:"metadata"`
	Company      Company                  `json:"company"`
	Customer     Customer                 `json:"customer"`
	Balances     GroundTruthBalances      `json:"balances"`
	Transactions []GroundTruthTransaction `json:"transactions"`
	Labels       GroundTruthLabels        `json:"ground_truth_labels"`
}

// GroundTruthMetadata identifies the statement and the rendering pass
// that produced it.
type GroundTruthMetadata struct {
	StatementNumber string `json:"statement_number"`
	StatementDate   string `json:"statement_date"`
	PDFStyle        string `json:"pdf_style"`
	GeneratedAt     string `json:"generated_at"`
	GeneratorRunID  string `json:"generator_run_id,omitempty"`
}

// GroundTruthBalances holds the closing balance and aging breakdown.
type GroundTruthBalances struct {
	TotalDue decimal.Decimal  `json:"total_due"`
	Aging    GroundTruthAging `json:"aging"`
}

// GroundTruthAging is the aging snapshot in its serialized shape.
type GroundTruthAging struct {
	Current    decimal.Decimal `json:"current"`
	Days1To30  decimal.Decimal `json:"days_1_30"`
	Days31To60 decimal.Decimal `json:"days_31_60"`
	Days61To90 decimal.Decimal `json:"days_61_90"`
	Days90Plus decimal.Decimal `json:"days_90_plus"`
}

// GroundTruthTransaction is a transaction in its serialized shape, with
// dd/mm/yyyy date strings.
type GroundTruthTransaction struct {
	Date         string          `json:"date"`
	Type         TransactionType `json:"type"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	IsCredit     bool            `json:"is_credit"`
	IsDebit      bool            `json:"is_debit"`
	PONumber     string          `json:"po_number"`
	DueDate      string          `json:"due_date"`
}

// GroundTruthCreditItem is one entry in the credit-items label subset.
type GroundTruthCreditItem struct {
	Reference   string          `json:"reference"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
}

// TransactionTypeCounts holds per-type transaction counts.
type TransactionTypeCounts struct {
	Invoices    int `json:"invoices"`
	CreditNotes int `json:"credit_notes"`
	Payments    int `json:"payments"`
	DebitNotes  int `json:"debit_notes"`
}

// GroundTruthLabels carries the derived labels an extraction system is
// scored against.
type GroundTruthLabels struct {
	CreditItems       []GroundTruthCreditItem `json:"credit_items"`
	NumCredits        int                     `json:"num_credits"`
	TotalCreditAmount decimal.Decimal         `json:"total_credit_amount"`
	TotalDebitAmount  decimal.Decimal         `json:"total_debit_amount"`
	NumTransactions   int                     `json:"num_transactions"`
	TransactionTypes  TransactionTypeCounts   `json:"transaction_types"`
}
