// Package models defines the shared domain types for synthetic supplier
// statements: transactions, aging snapshots, statement aggregates, and the
// ground-truth records paired with rendered documents.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the dd/mm/yyyy display format used on rendered statements
// and in ground-truth records.
const DateFormat = "02/01/2006"

// PaymentTermDays is the fixed payment term applied to every transaction.
const PaymentTermDays = 30

// TransactionType classifies a posted ledger event.
type TransactionType string

const (
	TypeInvoice    TransactionType = "invoice"
	TypeCreditNote TransactionType = "credit_note"
	TypePayment    TransactionType = "payment"
	TypeDebitNote  TransactionType = "debit_note"

	// TypeAdjustment is declared for completeness. The synthesizer never
	// produces it and its debit/credit direction is indeterminate.
	TypeAdjustment TransactionType = "adjustment"
)

// Prefix returns the reference prefix used when generating identifiers
// for transactions of this type.
func (t TransactionType) Prefix() string {
	switch t {
	case TypeInvoice:
		return "INV"
	case TypeCreditNote:
		return "CN"
	case TypePayment:
		return "PY"
	case TypeDebitNote:
		return "DN"
	case TypeAdjustment:
		return "ADJ"
	}
	return ""
}

// Polarity reports whether the type posts as a debit. The second return
// value is false for types with no fixed direction (adjustment).
func (t TransactionType) Polarity() (isDebit, determinate bool) {
	switch t {
	case TypeInvoice, TypeDebitNote:
		return true, true
	case TypeCreditNote, TypePayment:
		return false, true
	}
	return false, false
}

// Transaction is one posted ledger event on a statement.
//
// IsDebit and IsCredit are mutually exclusive: a debit increases the
// running balance, a credit decreases it. BalanceAfter is the running
// balance immediately after the transaction is applied in date order.
type Transaction struct {
	Date         time.Time
	Type         TransactionType
	Reference    string
	Description  string
	Amount       decimal.Decimal
	IsDebit      bool
	IsCredit     bool
	BalanceAfter decimal.Decimal
	PONumber     string
	DueDate      time.Time
}

// SignedAmount returns the amount with the debit/credit sign convention
// applied: debits are positive, credits negative.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit {
		return t.Amount
	}
	return t.Amount.Neg()
}

// AgingSnapshot classifies outstanding debit amounts into buckets by age
// relative to the moment of ledger generation. Credits are excluded.
type AgingSnapshot struct {
	Current    decimal.Decimal
	Days1To30  decimal.Decimal
	Days31To60 decimal.Decimal
	Days61To90 decimal.Decimal
	Days90Plus decimal.Decimal
}

// Total returns the sum of all aging buckets, which equals the total of
// all debit transaction amounts on the statement.
func (a AgingSnapshot) Total() decimal.Decimal {
	return a.Current.
		Add(a.Days1To30).
		Add(a.Days31To60).
		Add(a.Days61To90).
		Add(a.Days90Plus)
}

// Company is the biller entity on a statement.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"` // multi-line, newline separated
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website,omitempty"`
}

// Customer is the payer entity on a statement.
type Customer struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	AccountCode string `json:"account"`
}

// Statement is the aggregate root for one synthetic billing document.
// It is constructed once, never mutated, and consumed by exactly one
// rendering pass plus an optional ground-truth projection.
type Statement struct {
	Company        Company
	Customer       Customer
	Number         string
	Date           time.Time
	OpeningBalance decimal.Decimal
	Transactions   []Transaction
	TotalDue       decimal.Decimal
	Aging          AgingSnapshot
}
