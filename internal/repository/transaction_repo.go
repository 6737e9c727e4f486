package repository

import (
	"go-baki-pos/internal/model"

	"github.com/google/uuid"
)

type TransactionRepository interface {
	FindAllTransactions() []model.Transaction
	FindTransactionByID(id uuid.UUID) (*model.Transaction, error)
}

// FindAllTransactions returns the feed newest first.
func (s *Store) FindAllTransactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Transaction(nil), s.transactions...)
}

func (s *Store) FindTransactionByID(id uuid.UUID) (*model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}
