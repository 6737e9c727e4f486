package repository

import (
	"go-baki-pos/internal/model"

	"github.com/google/uuid"
)

type ProductRepository interface {
	FindAllProducts() []model.Product
	FindProductByID(id uuid.UUID) (*model.Product, error)
}

func (s *Store) FindAllProducts() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

func (s *Store) FindProductByID(id uuid.UUID) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}
