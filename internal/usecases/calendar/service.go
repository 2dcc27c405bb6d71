package calendar

import (
	"context"
	"time"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

// Generator lazily materializes dim_date rows for the calendar dates a batch
// actually references, and resolves each date to its deterministic DateKey.
type Generator interface {
	EnsureDates(ctx context.Context, q postgres.Queryer, dates []time.Time) (map[string]int, error)
}

type Service struct {
	dateRepo repository.DateDimensionRepository
}

func NewService(dateRepo repository.DateDimensionRepository) *Service {
	return &Service{dateRepo: dateRepo}
}

// EnsureDates inserts a complete dimension row for every date not yet
// present; dates already present are left untouched (date facts are
// immutable). The returned map is keyed by the time.DateOnly form.
func (s *Service) EnsureDates(ctx context.Context, q postgres.Queryer, dates []time.Time) (map[string]int, error) {
	keys := make(map[string]int, len(dates))
	entries := make([]domain.DateDimensionEntry, 0, len(dates))

	for _, d := range dates {
		dateValue := d.Format(time.DateOnly)
		if _, seen := keys[dateValue]; seen {
			continue
		}
		entry := domain.NewDateDimensionEntry(d)
		keys[dateValue] = entry.DateKey
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return keys, nil
	}

	if err := s.dateRepo.EnsureDates(ctx, q, entries); err != nil {
		return nil, err
	}

	return keys, nil
}
