package views

import (
	"slices"
	"time"

	"family-health-service/internal/pkg/utils"
)

// compareDateTimes orders two date strings. Values that do not parse sort
// after every real date in both directions and keep their relative order.
func compareDateTimes(a, b string, descending bool) int {
	at, aok := utils.ParseDateTime(a)
	bt, bok := utils.ParseDateTime(b)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	if descending {
		return bt.Compare(at)
	}
	return at.Compare(bt)
}

func sortByDateTime[T any](items []T, dateOf func(T) string, descending bool) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return compareDateTimes(dateOf(a), dateOf(b), descending)
	})
	return sorted
}

func take[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func notBefore(value string, now time.Time) bool {
	parsed, ok := utils.ParseDateTime(value)
	return ok && !parsed.Before(now)
}
