package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"NoResultsReport/src/model"
)

var summaryTitles = map[model.SummaryKind]string{
	model.SummaryAirport:     "Breakdown by Airports",
	model.SummaryDate:        "Breakdown by Departure Date",
	model.SummaryPassengers:  "Breakdown by Passenger Count",
	model.SummaryTicketClass: "Breakdown by Ticket Class",
}

// PrintSummaries 输出总数和四张汇总表
func PrintSummaries(w io.Writer, s model.Summaries, total, skipped int, countCol string) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Total number of searches with no results: %d\n", total)
	if skipped > 0 {
		p.Fprintf(w, "Records skipped as malformed: %d\n", skipped)
	}
	if total == 0 {
		fmt.Fprintln(w, "No valid data to process.")
	}

	for _, kind := range model.SummaryKinds {
		fmt.Fprintf(w, "\n%s:\n", summaryTitles[kind])
		if s.Rows(kind) == 0 {
			fmt.Fprintln(w, "  (empty)")
			continue
		}
		writeTable(w, s.DataFrame(kind, countCol).Records())
	}
}

// writeTable 输出全部行，不做截断；第一行为表头
func writeTable(w io.Writer, records [][]string) {
	if len(records) == 0 {
		return
	}
	widths := make([]int, len(records[0]))
	for _, row := range records {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(row []string) {
		var b strings.Builder
		b.WriteString(" ")
		for i, cell := range row {
			b.WriteString(" ")
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)+1))
			}
		}
		fmt.Fprintln(w, b.String())
	}

	writeRow(records[0])
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	writeRow(rule)
	for _, row := range records[1:] {
		writeRow(row)
	}
}
