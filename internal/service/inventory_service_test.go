package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-baki-pos/internal/model"
	"go-baki-pos/internal/repository"
)

func newInventory(store *repository.Store) InventoryService {
	return NewInventoryService(store, store, store, 10, 5)
}

func names(views []ProductView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func TestGetProducts_DefaultSortByName(t *testing.T) {
	svc := newInventory(repository.NewSeededStore(fixedNow))

	views, err := svc.GetProducts(ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lentils (Dal)", "Oil", "Rice (Atta)", "Salt", "Sugar"}, names(views))
	assert.Equal(t, model.StockIn, views[0].StockStatus)
	assert.Equal(t, float64(30*120), views[0].TotalValue)
}

func TestGetProducts_SearchAndSort(t *testing.T) {
	svc := newInventory(repository.NewSeededStore(fixedNow))

	views, err := svc.GetProducts(ProductQuery{Search: "তেল"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Oil"}, names(views))

	views, err = svc.GetProducts(ProductQuery{Search: "S"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lentils (Dal)", "Salt", "Sugar"}, names(views))

	views, err = svc.GetProducts(ProductQuery{Sort: "value", Dir: "desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lentils (Dal)", "Oil", "Rice (Atta)", "Sugar", "Salt"}, names(views))

	views, err = svc.GetProducts(ProductQuery{Sort: "quantity"})
	require.NoError(t, err)
	assert.Equal(t, "Oil", views[0].Name)
}

func TestGetProducts_StatusFilter(t *testing.T) {
	now := fixedNow
	products := []model.Product{
		{BaseModel: model.NewBase(now), Name: "Oil", NameBn: "তেল", Quantity: 0, Unit: model.UnitLiter},
		{BaseModel: model.NewBase(now), Name: "Salt", NameBn: "লবণ", Quantity: 3, Unit: model.UnitKg},
		{BaseModel: model.NewBase(now), Name: "Sugar", NameBn: "চিনি", Quantity: 8, Unit: model.UnitKg},
		{BaseModel: model.NewBase(now), Name: "Rice", NameBn: "চাল", Quantity: 40, Unit: model.UnitKg},
	}
	svc := newInventory(repository.NewStore(products, nil, nil))

	views, err := svc.GetProducts(ProductQuery{Status: "low-stock"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Salt", "Sugar"}, names(views))
	assert.Equal(t, model.StockCritical, views[0].StockStatus)
	assert.Equal(t, model.StockLow, views[1].StockStatus)

	views, err = svc.GetProducts(ProductQuery{Status: "out-of-stock"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Oil"}, names(views))

	views, err = svc.GetProducts(ProductQuery{Status: "in-stock"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rice"}, names(views))

	_, err = svc.GetProducts(ProductQuery{Status: "bogus"})
	assert.Error(t, err)
	_, err = svc.GetProducts(ProductQuery{Sort: "color"})
	assert.Error(t, err)
}

func TestGetCustomers(t *testing.T) {
	svc := newInventory(repository.NewSeededStore(fixedNow))

	all := svc.GetCustomers("")
	require.Len(t, all, 2)
	assert.Equal(t, "Karim", all[0].Name, "largest baki first")
	assert.True(t, all[0].Entries[0].Date.After(all[0].Entries[1].Date), "entries newest first")

	byPhone := svc.GetCustomers("0171")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Rahim", byPhone[0].Name)

	assert.Len(t, svc.GetCustomers("RAH"), 1)
	assert.Empty(t, svc.GetCustomers("nobody"))
}

func TestGetTransactions(t *testing.T) {
	store := repository.NewSeededStore(fixedNow)
	svc := newInventory(store)

	all, err := svc.GetTransactions(TransactionQuery{Type: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	bakis, err := svc.GetTransactions(TransactionQuery{Type: "baki-sale"})
	require.NoError(t, err)
	require.Len(t, bakis, 1)
	assert.Equal(t, "Rahim", bakis[0].CustomerName)

	byProduct, err := svc.GetTransactions(TransactionQuery{Search: "lentils"})
	require.NoError(t, err)
	assert.Len(t, byProduct, 1)

	byDescription, err := svc.GetTransactions(TransactionQuery{Search: "আটা"})
	require.NoError(t, err)
	assert.Len(t, byDescription, 1)

	_, err = svc.GetTransactions(TransactionQuery{Type: "refund"})
	assert.Error(t, err)
}

func TestGetByID(t *testing.T) {
	store := repository.NewSeededStore(fixedNow)
	svc := newInventory(store)

	p := store.FindAllProducts()[0]
	view, err := svc.GetProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, view.Name)

	_, err = svc.GetProductByID(uuid.New())
	assert.True(t, IsNotFound(err))

	c := store.FindAllCustomers()[0]
	gotC, err := svc.GetCustomerByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, gotC.Name)

	_, err = svc.GetTransactionByID(uuid.New())
	assert.True(t, IsNotFound(err))
}
