package visits

import (
	"fmt"
	"sort"
	"time"
)

// MonthGroup holds the visits of one calendar month, labeled like "February 2024".
type MonthGroup struct {
	Month  string   `json:"month"`
	Visits []*Visit `json:"visits"`
}

type yearMonth struct {
	year  int
	month time.Month
}

func (ym yearMonth) before(other yearMonth) bool {
	if ym.year != other.year {
		return ym.year < other.year
	}
	return ym.month < other.month
}

func (ym yearMonth) label() string {
	return fmt.Sprintf("%s %d", ym.month, ym.year)
}

// GroupByMonth groups visits by the UTC calendar month of CreatedAt, most recent month first.
// Visits keep their input order inside a group.
func GroupByMonth(visits []*Visit) []MonthGroup {
	grouped := make(map[yearMonth][]*Visit)
	for _, v := range visits {
		createdAt := v.CreatedAt.UTC()
		key := yearMonth{year: createdAt.Year(), month: createdAt.Month()}
		grouped[key] = append(grouped[key], v)
	}

	keys := make([]yearMonth, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[j].before(keys[i])
	})

	groups := make([]MonthGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, MonthGroup{
			Month:  k.label(),
			Visits: grouped[k],
		})
	}
	return groups
}

// GroupByDesignation counts visits per designation. Designations without visits are absent.
func GroupByDesignation(visits []*Visit) map[string]int {
	counts := make(map[string]int)
	for _, v := range visits {
		counts[v.Designation]++
	}
	return counts
}
