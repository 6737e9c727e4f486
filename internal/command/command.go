// Package command turns a typed or spoken utterance into one of the five
// shop intents. Classification is pure: it never touches the record store.
package command

import "go-baki-pos/internal/model"

type Intent string

const (
	IntentCreditGrant  Intent = "credit_grant"
	IntentPayment      Intent = "payment"
	IntentCashSale     Intent = "cash_sale"
	IntentStockIn      Intent = "stock_in"
	IntentUnclassified Intent = "unclassified"
)

// Command is the classified form of an utterance. The concrete type is one of
// CreditGrant, Payment, CashSale, StockIn or Unclassified.
type Command interface {
	Intent() Intent
	Utterance() string
}

// CreditGrant: "<name> <amount> taka baki"
type CreditGrant struct {
	Raw      string
	Customer string
	Amount   int64
}

// Payment: "<name> <amount> taka dilo|payment|paid"
type Payment struct {
	Raw      string
	Customer string
	Amount   int64
}

// CashSale: "<product> <qty> <unit> bikri|sale", with an optional
// "<amount> taka" anywhere for the total price.
type CashSale struct {
	Raw      string
	Product  string
	Quantity float64
	Unit     model.Unit
	Amount   int64
}

// StockIn: "<product> <qty> <unit> stock|ashlo"
type StockIn struct {
	Raw      string
	Product  string
	Quantity float64
	Unit     model.Unit
}

type Unclassified struct {
	Raw string
}

func (c CreditGrant) Intent() Intent  { return IntentCreditGrant }
func (c Payment) Intent() Intent      { return IntentPayment }
func (c CashSale) Intent() Intent     { return IntentCashSale }
func (c StockIn) Intent() Intent      { return IntentStockIn }
func (c Unclassified) Intent() Intent { return IntentUnclassified }

func (c CreditGrant) Utterance() string  { return c.Raw }
func (c Payment) Utterance() string      { return c.Raw }
func (c CashSale) Utterance() string     { return c.Raw }
func (c StockIn) Utterance() string      { return c.Raw }
func (c Unclassified) Utterance() string { return c.Raw }
