package repository

import (
	"errors"
	"strings"
	"sync"

	"go-baki-pos/internal/model"
)

var ErrNotFound = errors.New("record not found")

// Store is the single owner of products, customers and the transaction feed.
// Reads hand out copies; every mutation goes through Update.
type Store struct {
	mu           sync.RWMutex
	products     []model.Product
	customers    []model.Customer
	transactions []model.Transaction // newest first
}

func NewStore(products []model.Product, customers []model.Customer, transactions []model.Transaction) *Store {
	return &Store{
		products:     cloneProducts(products),
		customers:    cloneCustomers(customers),
		transactions: append([]model.Transaction(nil), transactions...),
	}
}

// Tx is the working copy handed to an Update callback. Pointers it returns are
// only valid inside that callback.
type Tx struct {
	products     []model.Product
	customers    []model.Customer
	transactions []model.Transaction
}

// Update runs fn with exclusive access. Changes made through tx become visible
// only when fn returns nil; on error the store is left untouched.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{
		products:     cloneProducts(s.products),
		customers:    cloneCustomers(s.customers),
		transactions: s.transactions,
	}
	if err := fn(tx); err != nil {
		return err
	}

	s.products = tx.products
	s.customers = tx.customers
	s.transactions = tx.transactions
	return nil
}

// Products returns the working copy in catalog order.
func (tx *Tx) Products() []*model.Product {
	out := make([]*model.Product, len(tx.products))
	for i := range tx.products {
		out[i] = &tx.products[i]
	}
	return out
}

// ProductSnapshot returns the products as they stand inside the transaction.
func (tx *Tx) ProductSnapshot() []model.Product {
	return cloneProducts(tx.products)
}

// FindCustomerByName does an exact, case-insensitive name lookup.
func (tx *Tx) FindCustomerByName(name string) *model.Customer {
	for i := range tx.customers {
		if strings.EqualFold(tx.customers[i].Name, name) {
			return &tx.customers[i]
		}
	}
	return nil
}

func (tx *Tx) AddCustomer(c model.Customer) *model.Customer {
	tx.customers = append(tx.customers, c)
	return &tx.customers[len(tx.customers)-1]
}

// PrependTransaction puts t at the head of the feed.
func (tx *Tx) PrependTransaction(t model.Transaction) {
	feed := make([]model.Transaction, 0, len(tx.transactions)+1)
	feed = append(feed, t)
	tx.transactions = append(feed, tx.transactions...)
}

func cloneProducts(in []model.Product) []model.Product {
	return append([]model.Product(nil), in...)
}

func cloneCustomers(in []model.Customer) []model.Customer {
	out := make([]model.Customer, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
