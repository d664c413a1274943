// Package report renders a budget and statement report for the terminal or
// for other tools.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/zombor/budget-tracker/internal/statement"
)

// Format selects the output representation
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

const (
	dateLayout      = "2006-01-02"
	unknownDate     = "unknown"
	defaultBarWidth = 30
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format %q (valid: %s, %s or %s)", s, FormatTable, FormatCSV, FormatJSON)
	}
}

// Input is the data shown in a report
type Input struct {
	Budget    statement.Budget  `json:"budget"`
	Summary   statement.Summary `json:"summary"`
	Statement *statement.Report `json:"statement,omitempty"` // nil when no statement was supplied
}

// Options tunes the table output
type Options struct {
	Color    bool
	BarWidth int // Width of the longest daily bar; zero means 30
}

// Render writes in to w in the given format
func Render(w io.Writer, format Format, in Input, opts Options) error {
	switch format {
	case FormatTable:
		return renderTable(w, in, opts)
	case FormatCSV:
		return renderCSV(w, in)
	case FormatJSON:
		return renderJSON(w, in)
	default:
		return fmt.Errorf("invalid format %q", format)
	}
}

func formatDate(d *time.Time) string {
	if d == nil {
		return unknownDate
	}
	return d.Format(dateLayout)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func renderTable(w io.Writer, in Input, opts Options) error {
	heading := color.New(color.Bold)
	good := color.New(color.FgGreen, color.Bold)
	bad := color.New(color.FgRed, color.Bold)
	bar := color.New(color.FgCyan)
	for _, c := range []*color.Color{heading, good, bad, bar} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	heading.Fprintln(w, "Monthly budget")
	fmt.Fprintf(tw, "Income\t%s\t\n", formatAmount(in.Summary.TotalIncome))
	fmt.Fprintf(tw, "Fixed expenses\t%s\t\n", formatAmount(in.Summary.TotalFixed))
	fmt.Fprintf(tw, "Forecast\t%s\t\n", formatAmount(in.Summary.Forecast))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}

	if in.Statement == nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No statement supplied, upload a PDF statement to track actual spending.")
		return nil
	}
	rep := in.Statement

	fmt.Fprintln(w)
	heading.Fprintln(w, "Transactions")
	if len(rep.Records) == 0 {
		fmt.Fprintln(w, "No transactions found in the statement.")
	} else {
		fmt.Fprintf(tw, "Date\tAmount\t\n")
		for _, r := range rep.Records {
			fmt.Fprintf(tw, "%s\t%s\t\n", formatDate(r.Date), formatAmount(r.Amount))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing transactions: %w", err)
		}
	}

	if len(rep.Daily) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Daily spending")
		bars := dailyBars(rep.Daily, opts.BarWidth)
		for i, d := range rep.Daily {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", formatDate(d.Date), formatAmount(d.Total), d.Count, bar.Sprint(bars[i]))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing daily totals: %w", err)
		}
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "Month summary")
	fmt.Fprintf(tw, "Fixed expenses\t%s\t\n", formatAmount(in.Summary.TotalFixed))
	fmt.Fprintf(tw, "Actual spending\t%s\t\n", formatAmount(in.Summary.TotalSpent))
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	remaining := good
	if in.Summary.Remaining.IsNegative() {
		remaining = bad
	}
	fmt.Fprintf(w, "Remaining: %s\n", remaining.Sprint(formatAmount(in.Summary.Remaining)))

	if rep.Dropped > 0 || rep.Undated > 0 {
		fmt.Fprintf(w, "\n%d matching lines: %d dropped, %d without a valid date\n", rep.Candidates, rep.Dropped, rep.Undated)
	}
	return nil
}

// dailyBars scales each day's total against the largest one
func dailyBars(daily []statement.DailyTotal, width int) []string {
	if width <= 0 {
		width = defaultBarWidth
	}
	largest := decimal.Zero
	for _, d := range daily {
		if d.Total.GreaterThan(largest) {
			largest = d.Total
		}
	}

	bars := make([]string, len(daily))
	if largest.IsZero() {
		return bars
	}
	w := decimal.NewFromInt(int64(width))
	for i, d := range daily {
		n := d.Total.Mul(w).Div(largest).Round(0).IntPart()
		bars[i] = strings.Repeat("█", int(n))
	}
	return bars
}

// renderCSV writes one row per daily total
func renderCSV(w io.Writer, in Input) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "total", "count"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	if in.Statement != nil {
		for _, d := range in.Statement.Daily {
			date := ""
			if d.Date != nil {
				date = d.Date.Format(dateLayout)
			}
			if err := cw.Write([]string{date, formatAmount(d.Total), strconv.Itoa(d.Count)}); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func renderJSON(w io.Writer, in Input) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
