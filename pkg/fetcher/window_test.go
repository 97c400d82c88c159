package fetcher

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeWindowFor(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tbl := []struct {
		name      string
		now       time.Time
		loc       *time.Location
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "utc midday",
			now:       time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "utc instant is previous day in new york",
			now:       time.Date(2024, 5, 10, 2, 0, 0, 0, time.UTC),
			loc:       ny,
			wantStart: time.Date(2024, 5, 9, 0, 0, 0, 0, ny),
			wantEnd:   time.Date(2024, 5, 9, 23, 59, 59, 0, ny),
		},
		{
			name:      "utc instant is next day in tokyo",
			now:       time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC),
			loc:       tokyo,
			wantStart: time.Date(2024, 5, 11, 0, 0, 0, 0, tokyo),
			wantEnd:   time.Date(2024, 5, 11, 23, 59, 59, 0, tokyo),
		},
		{
			name:      "exact midnight belongs to the new day",
			now:       time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			loc:       time.UTC,
			wantStart: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "spring forward day is 23 hours",
			now:       time.Date(2024, 3, 10, 15, 0, 0, 0, ny),
			loc:       ny,
			wantStart: time.Date(2024, 3, 10, 0, 0, 0, 0, ny),
			wantEnd:   time.Date(2024, 3, 10, 23, 59, 59, 0, ny),
		},
		{
			name:      "nil location means utc",
			now:       time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			loc:       nil,
			wantStart: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			w := TimeWindowFor(tt.now, tt.loc)
			assert.True(t, tt.wantStart.Equal(w.Start), "start %v, want %v", w.Start, tt.wantStart)
			assert.True(t, tt.wantEnd.Equal(w.End), "end %v, want %v", w.End, tt.wantEnd)
			assert.True(t, w.Start.Before(w.End))

			// both bounds are on the same calendar day as now
			ly, lm, ld := tt.now.In(w.Start.Location()).Date()
			sy, sm, sd := w.Start.Date()
			ey, em, ed := w.End.Date()
			assert.Equal(t, []int{ly, int(lm), ld}, []int{sy, int(sm), sd})
			assert.Equal(t, []int{ly, int(lm), ld}, []int{ey, int(em), ed})
		})
	}
}

func TestTimeWindow_Contains(t *testing.T) {
	w := TimeWindowFor(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC), time.UTC)

	assert.False(t, w.Contains(w.Start), "start is exclusive")
	assert.False(t, w.Contains(w.End), "end is exclusive")
	assert.True(t, w.Contains(w.Start.Add(time.Second)))
	assert.True(t, w.Contains(w.End.Add(-time.Second)))
	assert.False(t, w.Contains(w.Start.Add(-time.Hour)))
	assert.False(t, w.Contains(w.End.Add(time.Hour)))
}
