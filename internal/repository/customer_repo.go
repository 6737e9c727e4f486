package repository

import (
	"go-baki-pos/internal/model"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	FindAllCustomers() []model.Customer
	FindCustomerByID(id uuid.UUID) (*model.Customer, error)
}

func (s *Store) FindAllCustomers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCustomers(s.customers)
}

func (s *Store) FindCustomerByID(id uuid.UUID) (*model.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			out := c.Clone()
			return &out, nil
		}
	}
	return nil, ErrNotFound
}
