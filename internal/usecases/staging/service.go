package staging

import (
	"context"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/log"
)

// Intaker appends a batch of raw sale records to the staging area with their
// dates normalized to unambiguous calendar days.
type Intaker interface {
	Ingest(ctx context.Context, q postgres.Queryer, batchID string, records []domain.SaleRecord) ([]domain.StagedSale, error)
}

type Service struct {
	stagingRepo repository.StagingRepository
	normalizer  *DateNormalizer
}

func NewService(stagingRepo repository.StagingRepository, order DateOrder) *Service {
	return &Service{
		stagingRepo: stagingRepo,
		normalizer:  NewDateNormalizer(order),
	}
}

// Ingest is append-only: duplicates are not filtered here, the fact merge
// aggregates them. A record whose date cannot be normalized fails the call
// with a ParseError naming the record.
func (s *Service) Ingest(ctx context.Context, q postgres.Queryer, batchID string, records []domain.SaleRecord) ([]domain.StagedSale, error) {
	if len(records) == 0 {
		return nil, nil
	}

	staged := make([]domain.StagedSale, 0, len(records))
	for i, record := range records {
		saleDate, err := s.normalizer.Normalize(record.DateValue)
		if err != nil {
			return nil, &ParseError{Record: i, Value: record.DateValue, Err: err}
		}

		staged = append(staged, domain.StagedSale{
			BatchID:    batchID,
			CustomerID: record.CustomerID,
			ProductID:  record.ProductID,
			StoreID:    record.StoreID,
			SaleDate:   saleDate,
			Quantity:   record.Quantity,
		})
	}

	appended, err := s.stagingRepo.Append(ctx, q, staged)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"batch_id": batchID,
		"rows":     appended,
	}).Debug("sales staged")

	return staged, nil
}
