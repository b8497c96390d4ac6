// Package report renders the run summary to a console. It owns all
// presentation; the analysis passes only produce the structured Report.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/webtally/webtally/internal/model"
)

// Writer renders reports to a single output stream. Styling degrades to
// plain text automatically when the stream is not a terminal.
type Writer struct {
	out io.Writer

	title lipgloss.Style
	value lipgloss.Style
}

// NewWriter returns a Writer rendering to out.
func NewWriter(out io.Writer) *Writer {
	ren := lipgloss.NewRenderer(out)
	return &Writer{
		out:   out,
		title: ren.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		value: ren.NewStyle().Bold(true),
	}
}

// Progress prints one stage progress line.
func (w *Writer) Progress(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// WriteText renders the analysis summary: image share, most popular agent,
// and the per-hour hit table in descending-count order.
func (w *Writer) WriteText(rep model.Report) {
	w.Progress("Analyzing image requests...")
	fmt.Fprintf(w.out, "Image requests account for %s of all requests\n",
		w.value.Render(fmt.Sprintf("%.1f%%", rep.Images.Percentage)))

	w.Progress("Determining most popular browser...")
	fmt.Fprintf(w.out, "The most popular browser is %s with %s hits\n",
		w.value.Render(rep.TopAgent.Label),
		w.value.Render(fmt.Sprintf("%d", rep.TopAgent.Count)))

	fmt.Fprintf(w.out, "\n%s\n", w.title.Render("Hits by Hour:"))
	for _, h := range rep.HitsByHour {
		fmt.Fprintf(w.out, "Hour %02d has %d hits\n", h.Hour, h.Count)
	}
}
