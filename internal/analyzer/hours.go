package analyzer

import (
	"sort"

	"github.com/webtally/webtally/internal/model"
	"github.com/webtally/webtally/internal/timestamp"
)

// AggregateByHour tallies records by hour of day. Records whose timestamp
// fails to parse are skipped. The result is sorted by count descending;
// the sort is stable over first-seen order, so among equal counts the hour
// encountered first stays ahead. Hours with zero hits are omitted.
func AggregateByHour(records []model.LogRecord) []model.HourCount {
	tally := NewTally[int]()
	for _, r := range records {
		if hour, ok := timestamp.Hour(r.Timestamp); ok {
			tally.Add(hour)
		}
	}

	hours := make([]model.HourCount, 0, tally.Len())
	for _, p := range tally.Pairs() {
		hours = append(hours, model.HourCount{Hour: p.Key, Count: p.Count})
	}
	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].Count > hours[j].Count
	})
	return hours
}
