package report

import (
	"encoding/json"

	"github.com/webtally/webtally/internal/model"
)

// WriteJSON emits the report as indented JSON for downstream tooling.
// Nothing else is written to the stream, so the output can be piped.
func (w *Writer) WriteJSON(rep model.Report) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
