package fetcher

import (
	"time"

	"github.com/umputun/freshblock/pkg/domain"
)

// TimeWindowFor returns the calendar day containing now in loc.
// Start is midnight, end is one second before the next midnight.
func TimeWindowFor(now time.Time, loc *time.Location) domain.TimeWindow {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	next := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	return domain.TimeWindow{Start: start, End: next.Add(-time.Second)}
}
