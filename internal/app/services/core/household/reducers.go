package household

import "family-health-service/internal/app/models"

// The reducers never touch their input slice; every result is a fresh
// backing array so snapshots handed to a sync stay frozen.

func appendItem[T any](items []T, item T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, items...)
	return append(next, item)
}

func prependItem[T any](items []T, item T) []T {
	next := make([]T, 0, len(items)+1)
	next = append(next, item)
	return append(next, items...)
}

func replaceByID[T models.Identifiable](items []T, item T) ([]T, bool) {
	found := false
	next := make([]T, len(items))
	for i, existing := range items {
		if existing.GetID() == item.GetID() {
			next[i] = item
			found = true
			continue
		}
		next[i] = existing
	}
	return next, found
}

func removeByID[T models.Identifiable](items []T, id string) ([]T, bool) {
	found := false
	next := make([]T, 0, len(items))
	for _, existing := range items {
		if existing.GetID() == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	return next, found
}

func findByID[T models.Identifiable](items []T, id string) (T, bool) {
	for _, existing := range items {
		if existing.GetID() == id {
			return existing, true
		}
	}
	var zero T
	return zero, false
}
