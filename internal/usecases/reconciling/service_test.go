package reconciling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository/mocks"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

func snapshot() domain.SourceSnapshot {
	return domain.SourceSnapshot{
		Customers: []domain.Customer{
			{CustomerID: "C001", CustomerName: "Acme", Region: "South"},
		},
		Products: []domain.Product{
			{ProductID: "P001", ProductName: "Lens", Category: "Optics", Price: 10.0},
		},
		Stores: []domain.Store{
			{StoreID: "S001", StoreName: "Downtown", Location: "Springfield"},
		},
	}
}

func TestService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDimensionRepo := mocks.NewMockDimensionRepository(ctrl)
	service := NewService(mockDimensionRepo)

	snap := snapshot()

	mockDimensionRepo.EXPECT().
		UpsertCustomers(gomock.Any(), gomock.Any(), snap.Customers).
		Return(map[string]int64{"C001": 11}, nil)
	mockDimensionRepo.EXPECT().
		UpsertProducts(gomock.Any(), gomock.Any(), snap.Products).
		Return(map[string]int64{"P001": 21}, map[string]float64{"P001": 10.0}, nil)
	mockDimensionRepo.EXPECT().
		UpsertStores(gomock.Any(), gomock.Any(), snap.Stores).
		Return(map[string]int64{"S001": 31}, nil)

	keys, err := service.Reconcile(context.Background(), nil, snap)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), keys.CustomerKeys["C001"])
	assert.Equal(t, int64(21), keys.ProductKeys["P001"])
	assert.Equal(t, int64(31), keys.StoreKeys["S001"])
	assert.Equal(t, 10.0, keys.ProductPrices["P001"])
	assert.Nil(t, keys.DateKeys)
}

func TestService_Reconcile_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDimensionRepo := mocks.NewMockDimensionRepository(ctrl)
	service := NewService(mockDimensionRepo)

	snap := snapshot()

	// The same snapshot produces the same upsert arguments on every run;
	// key stability is the database's part of the contract.
	mockDimensionRepo.EXPECT().
		UpsertCustomers(gomock.Any(), gomock.Any(), snap.Customers).
		Return(map[string]int64{"C001": 11}, nil).
		Times(2)
	mockDimensionRepo.EXPECT().
		UpsertProducts(gomock.Any(), gomock.Any(), snap.Products).
		Return(map[string]int64{"P001": 21}, map[string]float64{"P001": 10.0}, nil).
		Times(2)
	mockDimensionRepo.EXPECT().
		UpsertStores(gomock.Any(), gomock.Any(), snap.Stores).
		Return(map[string]int64{"S001": 31}, nil).
		Times(2)

	first, err := service.Reconcile(context.Background(), nil, snap)
	assert.NoError(t, err)

	second, err := service.Reconcile(context.Background(), nil, snap)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_Reconcile_MissingBusinessKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDimensionRepo := mocks.NewMockDimensionRepository(ctrl)
	service := NewService(mockDimensionRepo)

	snap := snapshot()
	snap.Products = append(snap.Products, domain.Product{ProductID: "  ", ProductName: "Frame"})

	// No partial application: the repository must never be reached.
	keys, err := service.Reconcile(context.Background(), nil, snap)

	assert.Nil(t, keys)

	var integrityErr *DataIntegrityError
	assert.ErrorAs(t, err, &integrityErr)
	assert.Equal(t, "product", integrityErr.Entity)
	assert.ErrorIs(t, err, ErrMissingBusinessKey)
}

func TestService_Reconcile_TrimsBusinessKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDimensionRepo := mocks.NewMockDimensionRepository(ctrl)
	service := NewService(mockDimensionRepo)

	// A padded key and its clean form are the same customer, not two rows.
	snap := domain.SourceSnapshot{
		Customers: []domain.Customer{
			{CustomerID: " C001 ", CustomerName: "Old Name", Region: "South"},
			{CustomerID: "C001", CustomerName: "New Name", Region: "West"},
		},
	}

	mockDimensionRepo.EXPECT().
		UpsertCustomers(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ postgres.Queryer, customers []domain.Customer) (map[string]int64, error) {
			assert.Len(t, customers, 1)
			assert.Equal(t, "C001", customers[0].CustomerID)
			assert.Equal(t, "New Name", customers[0].CustomerName)
			return map[string]int64{"C001": 1}, nil
		})
	mockDimensionRepo.EXPECT().
		UpsertProducts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int64{}, map[string]float64{}, nil)
	mockDimensionRepo.EXPECT().
		UpsertStores(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int64{}, nil)

	keys, err := service.Reconcile(context.Background(), nil, snap)

	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{"C001": 1}, keys.CustomerKeys)
}

func TestService_Reconcile_DuplicateKeysCollapseLastWriteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDimensionRepo := mocks.NewMockDimensionRepository(ctrl)
	service := NewService(mockDimensionRepo)

	snap := domain.SourceSnapshot{
		Customers: []domain.Customer{
			{CustomerID: "C001", CustomerName: "Old Name", Region: "South"},
			{CustomerID: "C002", CustomerName: "Other", Region: "North"},
			{CustomerID: "C001", CustomerName: "New Name", Region: "West"},
		},
	}

	mockDimensionRepo.EXPECT().
		UpsertCustomers(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ postgres.Queryer, customers []domain.Customer) (map[string]int64, error) {
			assert.Len(t, customers, 2)
			assert.Equal(t, "New Name", customers[0].CustomerName)
			assert.Equal(t, "West", customers[0].Region)
			assert.Equal(t, "C002", customers[1].CustomerID)
			return map[string]int64{"C001": 1, "C002": 2}, nil
		})
	mockDimensionRepo.EXPECT().
		UpsertProducts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int64{}, map[string]float64{}, nil)
	mockDimensionRepo.EXPECT().
		UpsertStores(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int64{}, nil)

	keys, err := service.Reconcile(context.Background(), nil, snap)

	assert.NoError(t, err)
	assert.Len(t, keys.CustomerKeys, 2)
}
