package dataprocessing

import (
	"time"

	"orgpulse/pkg/contracts/domain"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Location = time.UTC
	return opts
}

func at(day string, clock string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", day+" "+clock, time.UTC)
	if err != nil {
		panic(err)
	}
	return &t
}

func profiles(pairs ...string) []domain.EmployeeProfile {
	out := make([]domain.EmployeeProfile, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.EmployeeProfile{
			EmployeeID: domain.EmployeeID(pairs[i]),
			Department: domain.Department(pairs[i+1]),
		})
	}
	return out
}

func ids(values ...string) []domain.EmployeeID {
	out := make([]domain.EmployeeID, len(values))
	for i, v := range values {
		out[i] = domain.EmployeeID(v)
	}
	return out
}
