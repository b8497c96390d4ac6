package analyzer

import (
	"github.com/webtally/webtally/internal/logparse"
	"github.com/webtally/webtally/internal/model"
)

// SummarizeAgents tallies records by agent family and returns the most
// common one. Among families with equal counts, the one that accumulated a
// hit first wins. Empty input yields ("None", 0).
func SummarizeAgents(records []model.LogRecord) model.AgentCount {
	tally := NewTally[string]()
	for _, r := range records {
		tally.Add(logparse.ClassifyAgent(r.AgentString))
	}
	label, count, ok := tally.Max()
	if !ok {
		return model.AgentCount{Label: logparse.AgentNone}
	}
	return model.AgentCount{Label: label, Count: count}
}
