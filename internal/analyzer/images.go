package analyzer

import (
	"regexp"

	"github.com/webtally/webtally/internal/model"
)

// imageRegex matches paths ending in an image extension. The match is
// anchored at the end of the string, so a query string after the extension
// disqualifies the path.
var imageRegex = regexp.MustCompile(`(?i)\.(jpg|gif|png)$`)

// ClassifyImages counts records whose path names an image resource and
// returns the share as a percentage of all records. An empty input yields a
// percentage of exactly zero.
func ClassifyImages(records []model.LogRecord) model.ImageStats {
	count := 0
	for _, r := range records {
		if imageRegex.MatchString(r.Path) {
			count++
		}
	}
	stats := model.ImageStats{Count: count}
	if len(records) > 0 {
		stats.Percentage = 100 * float64(count) / float64(len(records))
	}
	return stats
}
