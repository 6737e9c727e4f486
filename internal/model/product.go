package model

import (
	"strings"
	"time"
)

type Unit string

const (
	UnitKg    Unit = "kg"
	UnitLiter Unit = "liter"
	UnitPiece Unit = "piece"
)

// ParseUnit maps a spoken unit keyword to a Unit. Anything unknown is a piece.
func ParseUnit(s string) Unit {
	switch strings.ToLower(s) {
	case "kg":
		return UnitKg
	case "liter":
		return UnitLiter
	default:
		return UnitPiece
	}
}

// Bengali returns the noun used in generated transaction descriptions
func (u Unit) Bengali() string {
	switch u {
	case UnitKg:
		return "কেজি"
	case UnitLiter:
		return "লিটার"
	default:
		return "পিস"
	}
}

type Product struct {
	BaseModel
	Name        string    `json:"name" validate:"required"`
	NameBn      string    `json:"name_bn" validate:"required"`
	Quantity    float64   `json:"quantity"` // may go negative on oversell
	Unit        Unit      `json:"unit" validate:"required,oneof=kg liter piece"`
	Price       int64     `json:"price" validate:"gte=0"`
	LastUpdated time.Time `json:"last_updated"`
}

// AdjustStock changes the quantity and refreshes LastUpdated together
func (p *Product) AdjustStock(delta float64, at time.Time) {
	p.Quantity += delta
	p.LastUpdated = at
}

func (p Product) TotalValue() float64 {
	return p.Quantity * float64(p.Price)
}

type StockStatus string

const (
	StockOut      StockStatus = "Out of Stock"
	StockCritical StockStatus = "Critical"
	StockLow      StockStatus = "Low"
	StockIn       StockStatus = "In Stock"
)

// Status buckets a quantity against the low/critical thresholds.
func (p Product) Status(low, critical float64) StockStatus {
	switch {
	case p.Quantity == 0:
		return StockOut
	case p.Quantity < critical:
		return StockCritical
	case p.Quantity < low:
		return StockLow
	default:
		return StockIn
	}
}
