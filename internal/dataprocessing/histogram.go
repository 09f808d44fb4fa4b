package dataprocessing

import (
	"fmt"
	"time"

	"orgpulse/pkg/contracts/domain"
)

// BuildBarChart counts the checkin and checkout punches of one department
// into time-of-day bins. Dates are ignored; only the wall clock in
// opts.Location matters. Membership is resolved through the index, so
// departments outside DepartmentOrder can be charted too.
func BuildBarChart(idx *DepartmentIndex, events []domain.CheckEvent, dept domain.Department, opts Options) domain.BarChartResult {
	bins := opts.BinCount()
	result := domain.BarChartResult{
		Checkin:  make([]int, bins),
		Checkout: make([]int, bins),
		XLabels:  make([]string, bins),
	}

	loc := opts.location()
	for _, ev := range events {
		if d, ok := idx.DepartmentOf(ev.ID); !ok || d != dept {
			continue
		}
		if ev.Checkin != nil {
			if bin, ok := timeBin(*ev.Checkin, loc, opts.BinWidth, bins); ok {
				result.Checkin[bin]++
			}
		}
		if ev.Checkout != nil {
			if bin, ok := timeBin(*ev.Checkout, loc, opts.BinWidth, bins); ok {
				result.Checkout[bin]++
			}
		}
	}

	for i := range result.XLabels {
		start := time.Duration(i) * opts.BinWidth
		if start%time.Hour == 0 {
			result.XLabels[i] = fmt.Sprintf("%02d:00", int(start/time.Hour))
		}
	}

	return result
}

// timeBin maps t to its bin within the day. Sub-second precision is
// dropped before binning.
func timeBin(t time.Time, loc *time.Location, width time.Duration, bins int) (int, bool) {
	local := t.In(loc)
	sinceMidnight := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second

	bin := int(sinceMidnight / width)
	if bin < 0 || bin >= bins {
		return 0, false
	}
	return bin, true
}
