package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository/mocks"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

func TestService_EnsureDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDateRepo := mocks.NewMockDateDimensionRepository(ctrl)
	service := NewService(mockDateRepo)

	dates := []time.Time{
		time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		// duplicate day, must collapse before hitting the repository
		time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
	}

	mockDateRepo.EXPECT().
		EnsureDates(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ postgres.Queryer, entries []domain.DateDimensionEntry) error {
			assert.Len(t, entries, 2)
			assert.Equal(t, 20240105, entries[0].DateKey)
			assert.Equal(t, 2024, entries[0].Year)
			assert.Equal(t, 1, entries[0].Month)
			assert.Equal(t, 5, entries[0].Day)
			assert.Equal(t, 20241231, entries[1].DateKey)
			return nil
		})

	keys, err := service.EnsureDates(context.Background(), nil, dates)

	assert.NoError(t, err)
	assert.Len(t, keys, 2)
	assert.Equal(t, 20240105, keys["2024-01-05"])
	assert.Equal(t, 20241231, keys["2024-12-31"])
}

func TestService_EnsureDates_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDateRepo := mocks.NewMockDateDimensionRepository(ctrl)
	service := NewService(mockDateRepo)

	keys, err := service.EnsureDates(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, keys)
}

func TestDateKeyFor(t *testing.T) {
	assert.Equal(t, 20240105, domain.DateKeyFor(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 19991231, domain.DateKeyFor(time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)))
}
