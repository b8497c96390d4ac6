package logparse

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/webtally/webtally/internal/model"
)

// minRecordFields is the number of leading fields a line must carry to
// yield a record: path, timestamp, agent string, status, size.
const minRecordFields = 5

// ParseRecords splits raw access-log text into structured records.
// Lines are comma-delimited with standard CSV quoting, so quoted fields may
// contain commas. A line with fewer than five fields is dropped; fields
// beyond the fifth are ignored. Captured fields are trimmed of surrounding
// whitespace. Records come back in input order, which the hourly tie-break
// depends on.
func ParseRecords(raw string) []model.LogRecord {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1 // field counts vary line to line
	reader.LazyQuotes = true

	var records []model.LogRecord
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed line. A data-quality filter, not a fault.
			continue
		}
		if len(fields) < minRecordFields {
			continue
		}
		records = append(records, model.LogRecord{
			Path:        strings.TrimSpace(fields[0]),
			Timestamp:   strings.TrimSpace(fields[1]),
			AgentString: strings.TrimSpace(fields[2]),
			Status:      strings.TrimSpace(fields[3]),
			Size:        strings.TrimSpace(fields[4]),
		})
	}
	return records
}
