// Package analyzer runs the read-only analysis passes over parsed log
// records: image-request share, agent family popularity, and request volume
// by hour of day.
package analyzer

import (
	"golang.org/x/sync/errgroup"

	"github.com/webtally/webtally/internal/model"
)

// Analyze runs the three passes over records and assembles the report.
// The passes share no mutable state and only read the record slice, so they
// run concurrently; each writes its own field of the report.
func Analyze(records []model.LogRecord) model.Report {
	report := model.Report{TotalRecords: len(records)}

	var g errgroup.Group
	g.Go(func() error {
		report.Images = ClassifyImages(records)
		return nil
	})
	g.Go(func() error {
		report.TopAgent = SummarizeAgents(records)
		return nil
	})
	g.Go(func() error {
		report.HitsByHour = AggregateByHour(records)
		return nil
	})
	// The passes never return an error; Wait only synchronizes them.
	_ = g.Wait()

	return report
}
