package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type LedgerEntryType string

const (
	EntryCredit  LedgerEntryType = "credit"
	EntryPayment LedgerEntryType = "payment"
)

// LedgerEntry is one line of a customer's baki book. Payments are stored with
// a negative amount so the entries always sum to the outstanding balance.
type LedgerEntry struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      int64           `json:"amount"`
	Type        LedgerEntryType `json:"type"`
	Description string          `json:"description"`
}

type Customer struct {
	BaseModel
	Name      string        `json:"name" validate:"required"`
	Phone     string        `json:"phone,omitempty"`
	TotalBaki int64         `json:"total_baki"`
	Entries   []LedgerEntry `json:"transactions"`
}

func NewCustomer(name string, at time.Time) Customer {
	return Customer{BaseModel: NewBase(at), Name: name}
}

// Credit records goods taken on baki. Balance and entries move together.
func (c *Customer) Credit(amount int64, description string, at time.Time) LedgerEntry {
	return c.post(amount, EntryCredit, description, at)
}

// Pay records a repayment; the entry amount is the negated payment.
func (c *Customer) Pay(amount int64, description string, at time.Time) LedgerEntry {
	return c.post(-amount, EntryPayment, description, at)
}

// post saturates the balance at the int64 limits and records the amount that
// actually moved it, so the entries still sum to TotalBaki.
func (c *Customer) post(signed int64, kind LedgerEntryType, description string, at time.Time) LedgerEntry {
	next := addClamped(c.TotalBaki, signed)
	entry := LedgerEntry{
		ID:          uuid.New(),
		Date:        at,
		Amount:      next - c.TotalBaki,
		Type:        kind,
		Description: description,
	}
	c.Entries = append(c.Entries, entry)
	c.TotalBaki = next
	return entry
}

func addClamped(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

// EntriesTotal sums the signed ledger amounts. It equals TotalBaki for any
// customer built through Credit and Pay.
func (c Customer) EntriesTotal() int64 {
	var total int64
	for _, e := range c.Entries {
		total += e.Amount
	}
	return total
}

// Clone deep-copies the customer so callers can't reach the ledger slice
func (c Customer) Clone() Customer {
	out := c
	out.Entries = append([]LedgerEntry(nil), c.Entries...)
	return out
}
