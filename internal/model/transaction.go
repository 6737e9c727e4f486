package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxSale        TransactionType = "sale"
	TxStockIn     TransactionType = "stock-in"
	TxBakiSale    TransactionType = "baki-sale"
	TxBakiPayment TransactionType = "baki-payment"
)

// Transaction is one entry of the global feed. ProductName holds the spoken
// product token, not a product id.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Date         time.Time       `json:"date"`
	Type         TransactionType `json:"type"`
	ProductName  string          `json:"product_name,omitempty"`
	Quantity     float64         `json:"quantity,omitempty"`
	Amount       int64           `json:"amount"`
	CustomerName string          `json:"customer_name,omitempty"`
	Description  string          `json:"description"`
}

// IsSale reports whether the transaction counts towards sales totals (cash or baki).
func (t Transaction) IsSale() bool {
	return t.Type == TxSale || t.Type == TxBakiSale
}
