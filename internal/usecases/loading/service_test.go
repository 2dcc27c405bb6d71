package loading

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository/mocks"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

var saleDay = time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

// fakeTxRunner executes the transactional function directly. A nil *sql.Tx is
// fine because every collaborator below is stubbed.
type fakeTxRunner struct {
	calls int
	err   error
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type stubIntaker struct {
	staged []domain.StagedSale
	err    error
}

func (s *stubIntaker) Ingest(_ context.Context, _ postgres.Queryer, batchID string, _ []domain.SaleRecord) ([]domain.StagedSale, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.StagedSale, len(s.staged))
	copy(out, s.staged)
	for i := range out {
		out[i].BatchID = batchID
	}
	return out, nil
}

type stubReconciler struct {
	keys *domain.KeyMappings
	err  error
}

func (s *stubReconciler) Reconcile(context.Context, postgres.Queryer, domain.SourceSnapshot) (*domain.KeyMappings, error) {
	return s.keys, s.err
}

type stubGenerator struct {
	keys     map[string]int
	err      error
	received []time.Time
}

func (s *stubGenerator) EnsureDates(_ context.Context, _ postgres.Queryer, dates []time.Time) (map[string]int, error) {
	s.received = dates
	return s.keys, s.err
}

type stubMerger struct {
	summary      *domain.MergeSummary
	err          error
	receivedKeys *domain.KeyMappings
}

func (s *stubMerger) Merge(_ context.Context, _ postgres.Queryer, _ []domain.StagedSale, keys *domain.KeyMappings) (*domain.MergeSummary, error) {
	s.receivedKeys = keys
	return s.summary, s.err
}

func batchInput() domain.BatchInput {
	return domain.BatchInput{
		Snapshot: domain.SourceSnapshot{
			Customers: []domain.Customer{{CustomerID: "C001", CustomerName: "Acme"}},
		},
		Sales: []domain.SaleRecord{
			{CustomerID: "C001", ProductID: "P001", StoreID: "S001", DateValue: "2024-01-05", Quantity: 2},
			{CustomerID: "C001", ProductID: "P001", StoreID: "S001", DateValue: "2024-01-05", Quantity: 3},
		},
	}
}

func TestService_RunBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRunner := &fakeTxRunner{}
	intake := &stubIntaker{staged: []domain.StagedSale{
		{ID: 1, CustomerID: "C001", ProductID: "P001", StoreID: "S001", SaleDate: saleDay, Quantity: 2},
		{ID: 2, CustomerID: "C001", ProductID: "P001", StoreID: "S001", SaleDate: saleDay, Quantity: 3},
	}}
	reconciler := &stubReconciler{keys: &domain.KeyMappings{
		CustomerKeys: map[string]int64{"C001": 11},
	}}
	generator := &stubGenerator{keys: map[string]int{"2024-01-05": 20240105}}
	merger := &stubMerger{summary: &domain.MergeSummary{
		Affected:   []domain.FactKey{{DateKey: 20240105, CustomerKey: 11}},
		MergedRows: 2,
	}}
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)
	mockLoadRunRepo := mocks.NewMockLoadRunRepository(ctrl)

	service := NewService(txRunner, nil, intake, reconciler, generator, merger, mockStagingRepo, mockLoadRunRepo)

	mockStagingRepo.EXPECT().
		MarkMerged(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(2), nil)

	var recorded *domain.LoadRun
	mockLoadRunRepo.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ postgres.Queryer, run *domain.LoadRun) error {
			recorded = run
			return nil
		})

	result, err := service.RunBatch(context.Background(), batchInput())

	assert.NoError(t, err)
	assert.Equal(t, 1, txRunner.calls)
	assert.Equal(t, 2, result.Processed)
	assert.Zero(t, result.Skipped)
	assert.Equal(t, 1, result.FactRows)
	assert.NotEmpty(t, result.BatchID)

	// The date keys resolved inside the transaction must reach the merger.
	assert.Equal(t, generator.keys, merger.receivedKeys.DateKeys)
	assert.Len(t, generator.received, 2)

	assert.NotNil(t, recorded)
	assert.Equal(t, domain.LoadRunSucceeded, recorded.Status)
	assert.Equal(t, result.BatchID, recorded.BatchID)
	assert.Equal(t, 2, recorded.Processed)
}

func TestService_RunBatch_EmptyInputTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRunner := &fakeTxRunner{}
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)
	mockLoadRunRepo := mocks.NewMockLoadRunRepository(ctrl)

	service := NewService(txRunner, nil, &stubIntaker{}, &stubReconciler{}, &stubGenerator{}, &stubMerger{}, mockStagingRepo, mockLoadRunRepo)

	result, err := service.RunBatch(context.Background(), domain.BatchInput{})

	assert.NoError(t, err)
	assert.Zero(t, txRunner.calls)
	assert.Zero(t, result.Processed)
}

func TestService_RunBatch_MergeFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mergeErr := errors.New("fact upsert failed")

	txRunner := &fakeTxRunner{}
	intake := &stubIntaker{staged: []domain.StagedSale{
		{ID: 1, CustomerID: "C001", ProductID: "P001", StoreID: "S001", SaleDate: saleDay, Quantity: 2},
	}}
	reconciler := &stubReconciler{keys: &domain.KeyMappings{}}
	generator := &stubGenerator{keys: map[string]int{}}
	merger := &stubMerger{err: mergeErr}
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)
	mockLoadRunRepo := mocks.NewMockLoadRunRepository(ctrl)

	service := NewService(txRunner, nil, intake, reconciler, generator, merger, mockStagingRepo, mockLoadRunRepo)

	// MarkMerged must never run once the merge has failed.
	var recorded *domain.LoadRun
	mockLoadRunRepo.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ postgres.Queryer, run *domain.LoadRun) error {
			recorded = run
			return nil
		})

	result, err := service.RunBatch(context.Background(), batchInput())

	assert.Nil(t, result)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, StageMerge, loadErr.Stage)
	assert.ErrorIs(t, err, mergeErr)

	assert.NotNil(t, recorded)
	assert.Equal(t, domain.LoadRunFailed, recorded.Status)
	assert.Equal(t, StageMerge, recorded.Stage)
}

func TestService_RunBatch_WatermarkMismatchAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRunner := &fakeTxRunner{}
	intake := &stubIntaker{staged: []domain.StagedSale{
		{ID: 1, CustomerID: "C001", ProductID: "P001", StoreID: "S001", SaleDate: saleDay, Quantity: 2},
		{ID: 2, CustomerID: "C001", ProductID: "P001", StoreID: "S001", SaleDate: saleDay, Quantity: 3},
	}}
	reconciler := &stubReconciler{keys: &domain.KeyMappings{}}
	generator := &stubGenerator{keys: map[string]int{}}
	merger := &stubMerger{summary: &domain.MergeSummary{MergedRows: 2}}
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)
	mockLoadRunRepo := mocks.NewMockLoadRunRepository(ctrl)

	service := NewService(txRunner, nil, intake, reconciler, generator, merger, mockStagingRepo, mockLoadRunRepo)

	// Only one of two pending rows advanced: somebody already consumed the
	// other, so applying this batch would double-count.
	mockStagingRepo.EXPECT().
		MarkMerged(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	mockLoadRunRepo.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := service.RunBatch(context.Background(), batchInput())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, StageMark, loadErr.Stage)
}

func TestService_RunBatch_ConnectFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txRunner := &fakeTxRunner{err: postgres.ErrConnectivity}
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)
	mockLoadRunRepo := mocks.NewMockLoadRunRepository(ctrl)
	mockLoadRunRepo.EXPECT().
		Record(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	service := NewService(txRunner, nil, &stubIntaker{}, &stubReconciler{}, &stubGenerator{}, &stubMerger{}, mockStagingRepo, mockLoadRunRepo)

	result, err := service.RunBatch(context.Background(), batchInput())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, postgres.ErrConnectivity)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, StageConnect, loadErr.Stage)
}
