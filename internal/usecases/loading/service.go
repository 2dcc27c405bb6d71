package loading

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/calendar"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/merging"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/reconciling"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/staging"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/log"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/utils"
)

// Loader runs one complete batch: intake, dimension reconciliation, date
// derivation and fact merge, all inside a single transaction.
type Loader interface {
	RunBatch(ctx context.Context, input domain.BatchInput) (*domain.BatchResult, error)
}

// TransactionRunner is the all-or-nothing scope the orchestrator sequences
// inside; satisfied by postgres.Conn.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Service struct {
	txRunner    TransactionRunner
	db          postgres.Queryer
	intake      staging.Intaker
	reconciler  reconciling.Reconciler
	dates       calendar.Generator
	merger      merging.Merger
	stagingRepo repository.StagingRepository
	loadRunRepo repository.LoadRunRepository
}

func NewService(
	txRunner TransactionRunner,
	db postgres.Queryer,
	intake staging.Intaker,
	reconciler reconciling.Reconciler,
	dates calendar.Generator,
	merger merging.Merger,
	stagingRepo repository.StagingRepository,
	loadRunRepo repository.LoadRunRepository,
) *Service {
	return &Service{
		txRunner:    txRunner,
		db:          db,
		intake:      intake,
		reconciler:  reconciler,
		dates:       dates,
		merger:      merger,
		stagingRepo: stagingRepo,
		loadRunRepo: loadRunRepo,
	}
}

// RunBatch sequences Intake → Reconcile → EnsureDates → Merge inside ONE
// transaction, then advances the staged-row watermark in that same
// transaction — so a crash between merge and mark cannot leave rows that a
// later run would merge again. Any error rolls back every mutation of the
// run. A run with empty input touches nothing.
func (s *Service) RunBatch(ctx context.Context, input domain.BatchInput) (*domain.BatchResult, error) {
	batchID := uuid.New().String()
	logger := log.ForContext(ctx).WithField("batch_id", batchID)

	if input.Empty() {
		logger.Info("no input records, skipping load run")
		return &domain.BatchResult{BatchID: batchID}, nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGenerateID, err.Error())
	}

	run := &domain.LoadRun{
		ID:        runID,
		BatchID:   batchID,
		StartedAt: time.Now().UTC(),
	}

	result := &domain.BatchResult{BatchID: batchID}
	stage := StageConnect

	txErr := s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stage = StageIntake
		staged, err := s.intake.Ingest(ctx, tx, batchID, input.Sales)
		if err != nil {
			return err
		}

		stage = StageReconcile
		keys, err := s.reconciler.Reconcile(ctx, tx, input.Snapshot)
		if err != nil {
			return err
		}

		stage = StageDates
		dates := make([]time.Time, 0, len(staged))
		for _, row := range staged {
			dates = append(dates, row.SaleDate)
		}
		dateKeys, err := s.dates.EnsureDates(ctx, tx, dates)
		if err != nil {
			return err
		}
		keys.DateKeys = dateKeys

		stage = StageMerge
		summary, err := s.merger.Merge(ctx, tx, staged, keys)
		if err != nil {
			return err
		}

		stage = StageMark
		if len(staged) > 0 {
			marked, err := s.stagingRepo.MarkMerged(ctx, tx, batchID)
			if err != nil {
				return err
			}
			expected := int64(len(staged) - summary.QuarantinedRows)
			if marked != expected {
				return fmt.Errorf("%w: advanced %d of %d staged rows", ErrDuplicateApplication, marked, expected)
			}
		}

		result.Processed = summary.MergedRows
		result.Skipped = summary.QuarantinedRows
		result.FactRows = len(summary.Affected)
		return nil
	})

	run.FinishedAt = time.Now().UTC()
	run.Processed = result.Processed
	run.Quarantined = result.Skipped

	if txErr != nil {
		run.Status = domain.LoadRunFailed
		run.Stage = stage
		run.Error = txErr.Error()
		s.recordRun(ctx, run, logger)

		logger.WithError(txErr).WithField("stage", stage).Error("load run rolled back")
		return nil, &LoadError{Stage: stage, BatchID: batchID, Err: txErr}
	}

	run.Status = domain.LoadRunSucceeded
	run.Stage = stage
	s.recordRun(ctx, run, logger)

	logger.WithFields(log.Fields{
		"processed":   result.Processed,
		"quarantined": result.Skipped,
		"fact_rows":   result.FactRows,
	}).Info("load run committed")

	return result, nil
}

// recordRun writes the audit row outside the load transaction: a rolled-back
// run keeps its trail, and a failed audit write never fails the load.
func (s *Service) recordRun(ctx context.Context, run *domain.LoadRun, logger log.Logger) {
	if err := s.loadRunRepo.Record(ctx, s.db, run); err != nil {
		logger.WithError(err).Warn("could not record load run")
	}
}
