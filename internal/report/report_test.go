package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/webtally/webtally/internal/model"
)

func sampleReport() model.Report {
	return model.Report{
		TotalRecords: 4,
		Images:       model.ImageStats{Count: 2, Percentage: 50},
		TopAgent:     model.AgentCount{Label: "Firefox", Count: 3},
		HitsByHour:   []model.HourCount{{Hour: 10, Count: 3}, {Hour: 9, Count: 1}},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).WriteText(sampleReport())
	got := buf.String()

	// A buffer is not a terminal, so styling degrades to plain text and
	// the lines can be checked verbatim.
	wantLines := []string{
		"Image requests account for 50.0% of all requests",
		"The most popular browser is Firefox with 3 hits",
		"Hits by Hour:",
		"Hour 10 has 3 hits",
		"Hour 09 has 1 hits",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("output missing line %q\noutput:\n%s", line, got)
		}
	}

	// Hour lines must come out in descending-count order.
	if strings.Index(got, "Hour 10") > strings.Index(got, "Hour 09") {
		t.Errorf("hour lines out of order:\n%s", got)
	}
}

func TestWriteTextEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).WriteText(model.Report{TopAgent: model.AgentCount{Label: "None"}})
	got := buf.String()

	if !strings.Contains(got, "Image requests account for 0.0% of all requests") {
		t.Errorf("empty report should show 0.0%%:\n%s", got)
	}
	if !strings.Contains(got, "The most popular browser is None with 0 hits") {
		t.Errorf("empty report should show None agent:\n%s", got)
	}
	if strings.Contains(got, "Hour ") {
		t.Errorf("empty report should have no hour lines:\n%s", got)
	}
}

func TestWriteJSON(t *testing.T) {
	rep := sampleReport()

	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteJSON(rep); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got model.Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if diff := cmp.Diff(rep, got); diff != "" {
		t.Errorf("JSON round trip mismatch (-want +got):\n%s", diff)
	}
}
