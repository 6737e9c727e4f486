package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go-baki-pos/internal/model"
	"go-baki-pos/internal/repository"
	"go-baki-pos/pkg/validator"

	"github.com/google/uuid"
)

// ProductQuery mirrors the inventory screen's search, filter and sort controls
type ProductQuery struct {
	Search string `query:"q"`
	Status string `query:"status" validate:"omitempty,oneof=all in-stock low-stock out-of-stock"`
	Sort   string `query:"sort" validate:"omitempty,oneof=name quantity price value"`
	Dir    string `query:"dir" validate:"omitempty,oneof=asc desc"`
}

type TransactionQuery struct {
	Search string `query:"q"`
	Type   string `query:"type" validate:"omitempty,oneof=all sale stock-in baki-sale baki-payment"`
}

type ProductView struct {
	model.Product
	StockStatus model.StockStatus `json:"stock_status"`
	TotalValue  float64           `json:"total_value"`
}

type InventoryService interface {
	GetProducts(q ProductQuery) ([]ProductView, error)
	GetProductByID(id uuid.UUID) (*ProductView, error)
	GetCustomers(search string) []model.Customer
	GetCustomerByID(id uuid.UUID) (*model.Customer, error)
	GetTransactions(q TransactionQuery) ([]model.Transaction, error)
	GetTransactionByID(id uuid.UUID) (*model.Transaction, error)
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	transactionRepo repository.TransactionRepository
	lowStock        float64
	criticalStock   float64
}

func NewInventoryService(pRepo repository.ProductRepository, cRepo repository.CustomerRepository, tRepo repository.TransactionRepository, lowStock, criticalStock float64) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		customerRepo:    cRepo,
		transactionRepo: tRepo,
		lowStock:        lowStock,
		criticalStock:   criticalStock,
	}
}

func validationError(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	return nil
}

func (s *inventoryService) view(p model.Product) ProductView {
	return ProductView{
		Product:     p,
		StockStatus: p.Status(s.lowStock, s.criticalStock),
		TotalValue:  p.TotalValue(),
	}
}

func (s *inventoryService) GetProducts(q ProductQuery) ([]ProductView, error) {
	if err := validationError(&q); err != nil {
		return nil, err
	}

	search := strings.ToLower(q.Search)
	views := []ProductView{}
	for _, p := range s.productRepo.FindAllProducts() {
		if !strings.Contains(strings.ToLower(p.Name), search) && !strings.Contains(p.NameBn, q.Search) {
			continue
		}
		if !s.statusMatches(p, q.Status) {
			continue
		}
		views = append(views, s.view(p))
	}

	less := func(a, b ProductView) bool {
		switch q.Sort {
		case "quantity":
			return a.Quantity < b.Quantity
		case "price":
			return a.Price < b.Price
		case "value":
			return a.TotalValue < b.TotalValue
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(views, func(i, j int) bool {
		if q.Dir == "desc" {
			return less(views[j], views[i])
		}
		return less(views[i], views[j])
	})

	return views, nil
}

func (s *inventoryService) statusMatches(p model.Product, status string) bool {
	switch status {
	case "in-stock":
		return p.Quantity >= s.lowStock
	case "low-stock":
		return p.Quantity < s.lowStock && p.Quantity > 0
	case "out-of-stock":
		return p.Quantity == 0
	default:
		return true
	}
}

func (s *inventoryService) GetProductByID(id uuid.UUID) (*ProductView, error) {
	p, err := s.productRepo.FindProductByID(id)
	if err != nil {
		return nil, err
	}
	v := s.view(*p)
	return &v, nil
}

// GetCustomers filters by name or phone and orders by outstanding baki,
// largest first. Each customer's entries come back newest first.
func (s *inventoryService) GetCustomers(search string) []model.Customer {
	needle := strings.ToLower(search)
	out := []model.Customer{}
	for _, c := range s.customerRepo.FindAllCustomers() {
		if !strings.Contains(strings.ToLower(c.Name), needle) && !(c.Phone != "" && strings.Contains(c.Phone, search)) {
			continue
		}
		sortEntriesNewestFirst(c.Entries)
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalBaki > out[j].TotalBaki })
	return out
}

func (s *inventoryService) GetCustomerByID(id uuid.UUID) (*model.Customer, error) {
	c, err := s.customerRepo.FindCustomerByID(id)
	if err != nil {
		return nil, err
	}
	sortEntriesNewestFirst(c.Entries)
	return c, nil
}

func sortEntriesNewestFirst(entries []model.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
}

func (s *inventoryService) GetTransactions(q TransactionQuery) ([]model.Transaction, error) {
	if err := validationError(&q); err != nil {
		return nil, err
	}

	needle := strings.ToLower(q.Search)
	out := []model.Transaction{}
	for _, t := range s.transactionRepo.FindAllTransactions() {
		if q.Type != "" && q.Type != "all" && string(t.Type) != q.Type {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Description), needle) &&
			!strings.Contains(strings.ToLower(t.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(t.ProductName), needle) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *inventoryService) GetTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(id)
}

// IsNotFound reports whether err means the requested record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
