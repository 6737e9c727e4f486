package repository

import (
	"time"

	"go-baki-pos/internal/model"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// NewSeededStore builds the demo shop every process starts from:
// five products, two customers with baki, and two feed entries.
func NewSeededStore(now time.Time) *Store {
	return NewStore(SeedProducts(now), SeedCustomers(now), SeedTransactions(now))
}

func SeedProducts(now time.Time) []model.Product {
	product := func(name, nameBn string, qty float64, unit model.Unit, price int64) model.Product {
		return model.Product{
			BaseModel:   model.NewBase(now),
			Name:        name,
			NameBn:      nameBn,
			Quantity:    qty,
			Unit:        unit,
			Price:       price,
			LastUpdated: now,
		}
	}
	return []model.Product{
		product("Rice (Atta)", "আটা", 50, model.UnitKg, 55),
		product("Lentils (Dal)", "ডাল", 30, model.UnitKg, 120),
		product("Oil", "তেল", 20, model.UnitLiter, 180),
		product("Sugar", "চিনি", 25, model.UnitKg, 65),
		product("Salt", "লবণ", 40, model.UnitKg, 30),
	}
}

func SeedCustomers(now time.Time) []model.Customer {
	rahim := model.NewCustomer("Rahim", now.Add(-3*day))
	rahim.Phone = "01712345678"
	rahim.Credit(300, "মুদি দোকান থেকে কেনাকাটা", now.Add(-2*day))
	rahim.Credit(200, "চাল এবং ডাল", now.Add(-1*day))

	karim := model.NewCustomer("Karim", now.Add(-4*day))
	karim.Phone = "01898765432"
	karim.Credit(1000, "মাসিক কেনাকাটা", now.Add(-3*day))
	karim.Pay(250, "আংশিক পরিশোধ", now.Add(-1*day))

	return []model.Customer{rahim, karim}
}

// SeedTransactions returns the feed newest first.
func SeedTransactions(now time.Time) []model.Transaction {
	return []model.Transaction{
		{
			ID:          uuid.New(),
			Date:        now,
			Type:        model.TxSale,
			ProductName: "Rice (Atta)",
			Quantity:    2,
			Amount:      110,
			Description: "আটা ২ কেজি বিক্রি হলো ১১০ টাকায়",
		},
		{
			ID:           uuid.New(),
			Date:         now,
			Type:         model.TxBakiSale,
			ProductName:  "Lentils (Dal)",
			Quantity:     1,
			Amount:       120,
			CustomerName: "Rahim",
			Description:  "রহিম ডাল ১ কেজি বাকিতে নিলো ১২০ টাকা",
		},
	}
}
