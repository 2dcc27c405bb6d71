package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/sourcefile"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/config"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/loading"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/log"
)

// LoadSyncConfig is the scheduler's slice of the application configuration.
type LoadSyncConfig struct {
	CronSchedule string
	SourceDir    string
	ArchiveDir   string
	SyncEnabled  bool
}

// SourceReader supplies batch input from the exchange directory and archives
// consumed exports. Satisfied by sourcefile.Reader.
type SourceReader interface {
	ReadBatch(dir string) (*domain.BatchInput, error)
	Archive(dir, archiveDir string) error
}

// LoadSyncService triggers the warehouse load on a cron schedule. Runs are
// strictly sequential: a trigger that lands while a load is in flight is
// skipped, never queued, because overlapping loads against the same
// warehouse state are unsafe.
type LoadSyncService struct {
	scheduler *gocron.Scheduler
	config    LoadSyncConfig
	loader    loading.Loader
	reader    SourceReader

	syncRunning        bool
	archivePending     bool
	syncMutex          sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastResult         *domain.BatchResult
	lastError          string
}

// LoadSyncStatus is the snapshot exposed on the ops API.
type LoadSyncStatus struct {
	Enabled         bool                `json:"enabled"`
	CronSchedule    string              `json:"cron_schedule"`
	Running         bool                `json:"running"`
	ArchivePending  bool                `json:"archive_pending,omitempty"`
	LastStartedAt   *time.Time          `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time          `json:"last_completed_at,omitempty"`
	LastResult      *domain.BatchResult `json:"last_result,omitempty"`
	LastError       string              `json:"last_error,omitempty"`
}

func NewLoadSyncService(
	loader loading.Loader,
	reader SourceReader,
	appConfig *config.Config,
) *LoadSyncService {
	syncConfig := LoadSyncConfig{
		CronSchedule: appConfig.LoadSync.CronSchedule,
		SourceDir:    appConfig.LoadSync.SourceDir,
		ArchiveDir:   appConfig.LoadSync.ArchiveDir,
		SyncEnabled:  appConfig.LoadSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"source_dir":    syncConfig.SourceDir,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("warehouse load scheduler configured")

	return &LoadSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		loader:    loader,
		reader:    reader,
	}
}

// Start registers the cron job and runs the scheduler in the background
// until the context is cancelled.
func (s *LoadSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("warehouse load sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting warehouse load scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduledLoad()
	})
	if err != nil {
		return fmt.Errorf("scheduling warehouse load: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping warehouse load scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs a load outside the cron schedule, e.g. from the ops
// API after dropping fresh exports.
func (s *LoadSyncService) TriggerManualSync() {
	go s.runScheduledLoad()
}

func (s *LoadSyncService) Status() LoadSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := LoadSyncStatus{
		Enabled:        s.config.SyncEnabled,
		CronSchedule:   s.config.CronSchedule,
		Running:        s.syncRunning,
		ArchivePending: s.archivePending,
		LastResult:     s.lastResult,
		LastError:      s.lastError,
	}
	if !s.lastRunStartedAt.IsZero() {
		t := s.lastRunStartedAt
		status.LastStartedAt = &t
	}
	if !s.lastRunCompletedAt.IsZero() {
		t := s.lastRunCompletedAt
		status.LastCompletedAt = &t
	}

	return status
}

func (s *LoadSyncService) runScheduledLoad() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("warehouse load already in progress, skipping trigger")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastRunCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	ctx, correlationID := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx)

	// A sales export that was merged but not moved out of the exchange
	// directory must never be read again: re-staging it would add the same
	// transactions onto the fact table a second time. Retry the move and
	// refuse to load anything until it succeeds.
	if s.isArchivePending() {
		if err := s.reader.Archive(s.config.SourceDir, s.config.ArchiveDir); err != nil {
			logger.WithError(err).Error("consumed sales export still present, refusing to reload it")
			s.setOutcome(nil, fmt.Sprintf("consumed sales export still present: %s", err))
			return
		}
		s.setArchivePending(false)
		logger.Info("archived sales export left over from previous run")
	}

	input, err := s.reader.ReadBatch(s.config.SourceDir)
	if err != nil {
		if errors.Is(err, sourcefile.ErrNoSalesFile) {
			logger.Debug("no sales export present, nothing to load")
			s.setOutcome(nil, "")
			return
		}
		logger.WithError(err).Error("error reading source exports")
		s.setOutcome(nil, err.Error())
		return
	}

	result, err := s.loader.RunBatch(ctx, *input)
	if err != nil {
		logger.WithError(err).WithField("correlation_id", correlationID).
			Error("warehouse load failed")
		s.setOutcome(nil, err.Error())
		return
	}

	if err := s.reader.Archive(s.config.SourceDir, s.config.ArchiveDir); err != nil {
		// The rows are committed but the export is still in the exchange
		// directory. The in-transaction watermark only covers rows already
		// staged; a re-read would stage fresh rows and double the totals.
		s.setArchivePending(true)
		logger.WithError(err).Error("could not archive consumed sales export")
		s.setOutcome(result, fmt.Sprintf("load committed but sales export could not be archived: %s", err))
		return
	}

	s.setOutcome(result, "")
}

func (s *LoadSyncService) isArchivePending() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.archivePending
}

func (s *LoadSyncService) setArchivePending(pending bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.archivePending = pending
}

func (s *LoadSyncService) setOutcome(result *domain.BatchResult, errMsg string) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	if result != nil {
		s.lastResult = result
	}
	s.lastError = errMsg
}
