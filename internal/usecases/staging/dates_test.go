package staging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOrder(t *testing.T) {
	assert.Equal(t, OrderDayFirst, ParseDateOrder("day-first"))
	assert.Equal(t, OrderDayFirst, ParseDateOrder(" Day-First "))
	assert.Equal(t, OrderMonthFirst, ParseDateOrder("month-first"))
	assert.Equal(t, OrderStrict, ParseDateOrder("strict"))
	assert.Equal(t, OrderStrict, ParseDateOrder(""))
	assert.Equal(t, OrderStrict, ParseDateOrder("dd/mm/yyyy"))
}

func TestDateNormalizer_Normalize(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		order   DateOrder
		value   string
		want    time.Time
		wantErr error
	}{
		{
			name:  "ISO date is accepted under any order",
			order: OrderStrict,
			value: "2024-01-05",
			want:  date(2024, time.January, 5),
		},
		{
			name:  "year-first numeric form is unambiguous",
			order: OrderStrict,
			value: "2024/01/05",
			want:  date(2024, time.January, 5),
		},
		{
			name:  "day-first reads 03/04/2024 as 3 April",
			order: OrderDayFirst,
			value: "03/04/2024",
			want:  date(2024, time.April, 3),
		},
		{
			name:  "month-first reads 03/04/2024 as March 4",
			order: OrderMonthFirst,
			value: "03/04/2024",
			want:  date(2024, time.March, 4),
		},
		{
			name:  "dash separated numeric date",
			order: OrderDayFirst,
			value: "25-12-2024",
			want:  date(2024, time.December, 25),
		},
		{
			name:    "strict rejects values readable both ways",
			order:   OrderStrict,
			value:   "03/04/2024",
			wantErr: ErrAmbiguousDate,
		},
		{
			name:  "strict accepts values with only one valid reading",
			order: OrderStrict,
			value: "25/12/2024",
			want:  date(2024, time.December, 25),
		},
		{
			name:  "strict accepts month-first-only readings",
			order: OrderStrict,
			value: "12/25/2024",
			want:  date(2024, time.December, 25),
		},
		{
			name:  "strict accepts equal day and month",
			order: OrderStrict,
			value: "05/05/2024",
			want:  date(2024, time.May, 5),
		},
		{
			name:    "nonexistent calendar day is rejected",
			order:   OrderDayFirst,
			value:   "31/02/2024",
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "empty value",
			order:   OrderDayFirst,
			value:   "  ",
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "non-date text",
			order:   OrderDayFirst,
			value:   "not-a-date",
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "two-part value",
			order:   OrderDayFirst,
			value:   "01/2024",
			wantErr: ErrUnparseableDate,
		},
		{
			name:    "two-digit year is rejected",
			order:   OrderDayFirst,
			value:   "03/04/24",
			wantErr: ErrUnparseableDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDateNormalizer(tt.order).Normalize(tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateKeyEncodingRoundTrip(t *testing.T) {
	// The normalized date must land on the same key the calendar derives.
	normalized, err := NewDateNormalizer(OrderDayFirst).Normalize("05/01/2024")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-05", normalized.Format(time.DateOnly))
}
