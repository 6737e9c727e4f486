package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-baki-pos/internal/model"
	"go-baki-pos/pkg/validator"
)

var now = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func TestSeededStore(t *testing.T) {
	s := NewSeededStore(now)

	assert.Len(t, s.FindAllProducts(), 5)
	assert.Len(t, s.FindAllTransactions(), 2)

	customers := s.FindAllCustomers()
	require.Len(t, customers, 2)
	assert.Equal(t, int64(500), customers[0].TotalBaki)
	assert.Equal(t, int64(750), customers[1].TotalBaki)
	for _, c := range customers {
		assert.Equal(t, c.TotalBaki, c.EntriesTotal(), spew.Sdump(c))
	}

	ids := map[string]bool{}
	for _, p := range s.FindAllProducts() {
		assert.False(t, ids[p.ID.String()], "duplicate product id")
		ids[p.ID.String()] = true
	}
}

func TestUpdateCommits(t *testing.T) {
	s := NewSeededStore(now)

	err := s.Update(func(tx *Tx) error {
		tx.Products()[0].AdjustStock(-2, now)
		c := tx.FindCustomerByName("rahim")
		require.NotNil(t, c)
		c.Credit(100, "Rahim 100 taka baki", now)
		tx.PrependTransaction(model.Transaction{Description: "newest"})
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, float64(48), s.FindAllProducts()[0].Quantity)
	assert.Equal(t, int64(600), s.FindAllCustomers()[0].TotalBaki)
	feed := s.FindAllTransactions()
	require.Len(t, feed, 3)
	assert.Equal(t, "newest", feed[0].Description)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	s := NewSeededStore(now)
	boom := errors.New("boom")

	err := s.Update(func(tx *Tx) error {
		tx.Products()[0].AdjustStock(-50, now)
		tx.AddCustomer(model.NewCustomer("Jamal", now))
		tx.PrependTransaction(model.Transaction{Description: "lost"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, float64(50), s.FindAllProducts()[0].Quantity)
	assert.Len(t, s.FindAllCustomers(), 2)
	assert.Len(t, s.FindAllTransactions(), 2)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := NewSeededStore(now)

	customers := s.FindAllCustomers()
	customers[0].Entries[0].Amount = 99999
	customers[0].TotalBaki = 0

	products := s.FindAllProducts()
	products[0].Quantity = -1

	fresh := s.FindAllCustomers()
	assert.Equal(t, int64(300), fresh[0].Entries[0].Amount)
	assert.Equal(t, int64(500), fresh[0].TotalBaki)
	assert.Equal(t, float64(50), s.FindAllProducts()[0].Quantity)
}

func TestFindByID(t *testing.T) {
	s := NewSeededStore(now)

	p := s.FindAllProducts()[2]
	got, err := s.FindProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oil", got.Name)

	c := s.FindAllCustomers()[1]
	gotC, err := s.FindCustomerByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Karim", gotC.Name)

	tx := s.FindAllTransactions()[0]
	gotT, err := s.FindTransactionByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.Description, gotT.Description)

	_, err = s.FindProductByID(c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindCustomerByID(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindTransactionByID(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeedRecordsAreValid(t *testing.T) {
	for _, p := range SeedProducts(now) {
		assert.Empty(t, validator.ValidateStruct(&p), p.Name)
	}
	for _, c := range SeedCustomers(now) {
		assert.Empty(t, validator.ValidateStruct(&c), c.Name)
	}
	assert.NotEmpty(t, validator.ValidateStruct(&model.Product{Name: "Ghee", NameBn: "ঘি", Unit: "dozen"}))
}
