package service

import (
	"time"

	"go-baki-pos/internal/model"
	"go-baki-pos/internal/repository"
)

// DashboardStats summarizes the shop for the overview screen
type DashboardStats struct {
	TotalInventory    float64 `json:"total_inventory"`
	ProductTypes      int     `json:"product_types"`
	TodaySales        int64   `json:"today_sales"`
	TodayTransactions int     `json:"today_transactions"`
	TotalBaki         int64   `json:"total_baki"`
	CustomersWithBaki int     `json:"customers_with_baki"`
	LowStockCount     int     `json:"low_stock_count"`
	OutOfStockCount   int     `json:"out_of_stock_count"`
	TotalSales        int64   `json:"total_sales"`
	TotalPayments     int64   `json:"total_payments"`
}

type DashboardService interface {
	GetDashboardStats() *DashboardStats
}

type dashboardService struct {
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	lowStock        float64
	now             func() time.Time
}

func NewDashboardService(pRepo repository.ProductRepository, cRepo repository.CustomerRepository, tRepo repository.TransactionRepository, lowStock float64, now func() time.Time) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		productRepo:     pRepo,
		customerRepo:    cRepo,
		transactionRepo: tRepo,
		lowStock:        lowStock,
		now:             now,
	}
}

func (s *dashboardService) GetDashboardStats() *DashboardStats {
	var stats DashboardStats

	products := s.productRepo.FindAllProducts()
	stats.ProductTypes = len(products)
	for _, p := range products {
		stats.TotalInventory += p.Quantity
		switch {
		case p.Quantity == 0:
			stats.OutOfStockCount++
		case p.Quantity > 0 && p.Quantity < s.lowStock:
			stats.LowStockCount++
		}
	}

	for _, c := range s.customerRepo.FindAllCustomers() {
		stats.TotalBaki += c.TotalBaki
		if c.TotalBaki > 0 {
			stats.CustomersWithBaki++
		}
	}

	now := s.now()
	for _, t := range s.transactionRepo.FindAllTransactions() {
		today := sameDay(t.Date, now)
		if today {
			stats.TodayTransactions++
		}
		if t.IsSale() {
			stats.TotalSales += t.Amount
			if today {
				stats.TodaySales += t.Amount
			}
		}
		if t.Type == model.TxBakiPayment {
			stats.TotalPayments += t.Amount
		}
	}

	return &stats
}

func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
