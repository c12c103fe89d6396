package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// Timing records operation timing samples and renders a report table.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// Sample contains information about one timed operation.
type Sample struct {
	Label  string
	Start  time.Time
	End    time.Time
	Digits int
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample with a label and the digit count of the
// operation's result. The sample covers the span since the previous
// sample (or since Start for the first one).
func (t *Timing) Sample(label string, digits int) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label:  label,
		Start:  start,
		End:    time.Now(),
		Digits: digits,
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print renders the timing report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Digits").SetAlign(tabulate.MR)

	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%", float64(duration)/float64(total)*100))
		row.Column(fmt.Sprintf("%d", sample.Digits))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")

	tab.Print(out)
}
