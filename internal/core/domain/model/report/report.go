// Package report provides the read model of the driver rank report.
package report

import (
	"cmp"
	"slices"

	"dispatch/internal/core/domain/model/driver"
)

// DriverDistance pairs a driver with the sum of the distances of all their deliveries.
// It is computed on demand and never persisted.
type DriverDistance struct {
	Driver        *driver.Driver
	TotalDistance float64
}

// Rank returns rows ordered by TotalDistance descending. Drivers with equal
// totals are ordered by driver ID ascending so the result is deterministic.
// The input slice is not modified.
func Rank(rows []DriverDistance) []DriverDistance {
	ranked := slices.Clone(rows)
	slices.SortStableFunc(ranked, func(a, b DriverDistance) int {
		if c := cmp.Compare(b.TotalDistance, a.TotalDistance); c != 0 {
			return c
		}
		return a.Driver.ID().Compare(b.Driver.ID())
	})
	return ranked
}
