package application

import (
	"cmp"
	"slices"

	"github.com/victorcollective/showcase/internal/domain/model"
)

// DefaultDisplayLimit is the number of projects shown when no limit is configured.
const DefaultDisplayLimit = 3

// Rank removes projects whose ID repeats an earlier one, orders the rest with
// featured projects first and then by ascending Order, and keeps at most
// limit entries. Ties keep their input order. Rank does not modify projects.
func Rank(projects []model.Project, limit int) []model.Project {
	seen := make(map[string]bool, len(projects))
	unique := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		unique = append(unique, p)
	}

	slices.SortStableFunc(unique, func(a, b model.Project) int {
		if a.Featured != b.Featured {
			if a.Featured {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Order, b.Order)
	})

	if limit >= 0 && len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}
