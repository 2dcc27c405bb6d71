package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/sourcefile"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

type stubLoader struct {
	calls  int
	result *domain.BatchResult
	err    error
}

func (s *stubLoader) RunBatch(context.Context, domain.BatchInput) (*domain.BatchResult, error) {
	s.calls++
	return s.result, s.err
}

type stubReader struct {
	input        *domain.BatchInput
	readErr      error
	archiveErr   error
	archiveCalls int
}

func (s *stubReader) ReadBatch(string) (*domain.BatchInput, error) {
	return s.input, s.readErr
}

func (s *stubReader) Archive(string, string) error {
	s.archiveCalls++
	return s.archiveErr
}

func newTestService(loader *stubLoader, reader *stubReader) *LoadSyncService {
	return &LoadSyncService{
		config: LoadSyncConfig{
			CronSchedule: "0 2 * * *",
			SourceDir:    "/tmp/exchange",
			ArchiveDir:   "/tmp/archive",
			SyncEnabled:  true,
		},
		loader: loader,
		reader: reader,
	}
}

func TestLoadSyncService_RunConsumesAndArchives(t *testing.T) {
	loader := &stubLoader{result: &domain.BatchResult{BatchID: "b1", Processed: 4, FactRows: 2}}
	reader := &stubReader{input: &domain.BatchInput{
		Sales: []domain.SaleRecord{{CustomerID: "C001", Quantity: 1}},
	}}
	service := newTestService(loader, reader)

	service.runScheduledLoad()

	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, 1, reader.archiveCalls)

	status := service.Status()
	assert.False(t, status.Running)
	assert.Empty(t, status.LastError)
	assert.NotNil(t, status.LastResult)
	assert.Equal(t, 4, status.LastResult.Processed)
	assert.NotNil(t, status.LastStartedAt)
	assert.NotNil(t, status.LastCompletedAt)
}

func TestLoadSyncService_NoSalesFileIsNotAFailure(t *testing.T) {
	loader := &stubLoader{}
	reader := &stubReader{readErr: sourcefile.ErrNoSalesFile}
	service := newTestService(loader, reader)

	service.runScheduledLoad()

	assert.Zero(t, loader.calls)
	assert.Zero(t, reader.archiveCalls)
	assert.Empty(t, service.Status().LastError)
}

func TestLoadSyncService_LoadFailureSkipsArchive(t *testing.T) {
	loader := &stubLoader{err: errors.New("load batch failed at stage merge")}
	reader := &stubReader{input: &domain.BatchInput{
		Sales: []domain.SaleRecord{{CustomerID: "C001", Quantity: 1}},
	}}
	service := newTestService(loader, reader)

	service.runScheduledLoad()

	// The sales file stays put so a fixed feed can be reloaded.
	assert.Zero(t, reader.archiveCalls)
	assert.Contains(t, service.Status().LastError, "stage merge")
}

func TestLoadSyncService_ArchiveFailureBlocksReconsumption(t *testing.T) {
	loader := &stubLoader{result: &domain.BatchResult{BatchID: "b1", Processed: 2}}
	reader := &stubReader{
		input:      &domain.BatchInput{Sales: []domain.SaleRecord{{CustomerID: "C001", Quantity: 1}}},
		archiveErr: errors.New("permission denied"),
	}
	service := newTestService(loader, reader)

	service.runScheduledLoad()

	assert.Equal(t, 1, loader.calls)
	status := service.Status()
	assert.True(t, status.ArchivePending)
	assert.Contains(t, status.LastError, "could not be archived")

	// The export is still in the exchange directory; a second trigger must
	// not stage and merge the same sales again.
	service.runScheduledLoad()

	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, 2, reader.archiveCalls)
	assert.Contains(t, service.Status().LastError, "still present")
}

func TestLoadSyncService_ArchiveRetrySucceedsThenResumes(t *testing.T) {
	loader := &stubLoader{result: &domain.BatchResult{BatchID: "b1", Processed: 2}}
	reader := &stubReader{
		input:      &domain.BatchInput{Sales: []domain.SaleRecord{{CustomerID: "C001", Quantity: 1}}},
		archiveErr: errors.New("permission denied"),
	}
	service := newTestService(loader, reader)

	service.runScheduledLoad()
	assert.Equal(t, 1, loader.calls)

	// The operator clears the obstruction; the retry moves the file and the
	// run proceeds to find an empty exchange directory.
	reader.archiveErr = nil
	reader.readErr = sourcefile.ErrNoSalesFile
	service.runScheduledLoad()

	assert.Equal(t, 1, loader.calls)
	status := service.Status()
	assert.False(t, status.ArchivePending)
	assert.Empty(t, status.LastError)
}

func TestLoadSyncService_SkipsOverlappingRun(t *testing.T) {
	loader := &stubLoader{}
	reader := &stubReader{readErr: sourcefile.ErrNoSalesFile}
	service := newTestService(loader, reader)

	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.runScheduledLoad()

	assert.Zero(t, loader.calls)
	assert.True(t, service.Status().Running)
}
