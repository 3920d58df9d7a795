package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"

	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
	"github.com/simaogato/lifedash-backend/internal/usecase/dashboard"
	"github.com/simaogato/lifedash-backend/internal/usecase/duedate"
	"github.com/simaogato/lifedash-backend/internal/usecase/task"
	"github.com/simaogato/lifedash-backend/internal/usecase/valuation"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	html     bool
	currency string
	width    int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display today's dashboard" }
func (*summaryCmd) Usage() string {
	return `dashctl summary [-html] [-currency <code>] [-width <cols>]

  Displays the home page summary: task counts, the journal streak, the
  portfolio valuation and the pending tasks ordered by urgency.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "Write HTML instead of rendering for the terminal.")
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 code the portfolio is valued in.")
	f.IntVar(&c.width, "width", 100, "Word wrap width of the terminal rendering.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if money.GetCurrency(c.currency) == nil {
		fmt.Fprintf(os.Stderr, "Unknown currency %q\n", c.currency)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.close()

	summary, err := loadSummary(ctx, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var md bytes.Buffer
	summary.WriteMarkdown(&md, c.currency)

	if c.html {
		if err := goldmark.Convert(md.Bytes(), os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(md.String(), c.width)
	return subcommands.ExitSuccess
}

// Summary gathers what the summary report shows
type Summary struct {
	Date      time.Time
	Calendar  calendar.Calendar
	Overview  *dashboard.Overview
	Tasks     []duedate.ClassifiedTask
	Portfolio *valuation.Portfolio
}

func loadSummary(ctx context.Context, s *session) (*Summary, error) {
	overview, err := s.services.Dashboard.GetOverview(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.services.Tasks.List(ctx, task.FilterAll)
	if err != nil {
		return nil, err
	}
	portfolio, err := s.services.Investment.Portfolio(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Date:      s.services.Tasks.Now(),
		Calendar:  s.services.Tasks.Calendar,
		Overview:  overview,
		Tasks:     tasks,
		Portfolio: portfolio,
	}, nil
}

// WriteMarkdown renders the summary as a markdown document
func (s *Summary) WriteMarkdown(w io.Writer, currency string) {
	o := s.Overview

	fmt.Fprintf(w, "# Dashboard, %s\n\n", s.Calendar.Format(s.Date, "Monday, January 2, 2006"))

	if o.Quote != nil {
		fmt.Fprintf(w, "> %s\n", o.Quote.Quote)
		if o.Quote.Author != nil {
			fmt.Fprintf(w, ">\n> %s\n", *o.Quote.Author)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "## Today")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- Tasks: %d pending, %d completed today\n", o.Tasks.Pending, o.Tasks.CompletedToday)
	fmt.Fprintf(w, "- Journal streak: %s\n", plural(o.JournalStreak, "day"))
	fmt.Fprintf(w, "- Goals: %d active, %d completed\n", o.Goals.Active, o.Goals.Completed)
	fmt.Fprintf(w, "- Groceries: %d of %d left\n", o.Groceries.Unchecked, o.Groceries.Total)
	if o.LatestWeight != nil {
		fmt.Fprintf(w, "- Weight: %.1f (%s)\n", o.LatestWeight.Weight, s.Calendar.DayOf(o.LatestWeight.Date))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Tasks")
	fmt.Fprintln(w)
	pending := 0
	for _, t := range s.Tasks {
		if t.IsCompleted() {
			continue
		}
		if pending == 0 {
			fmt.Fprintln(w, "| Task | Due | Urgency | Priority |")
			fmt.Fprintln(w, "|:---|:---|:---|---:|")
		}
		pending++
		due := "-"
		if t.DueDate != nil {
			due = s.Calendar.DayOf(*t.DueDate).String()
		}
		fmt.Fprintf(w, "| %s | %s | %s | %d |\n", escapeCell(t.Title), due, t.Urgency, t.Priority)
	}
	if pending == 0 {
		fmt.Fprintln(w, "Nothing pending.")
	}
	fmt.Fprintln(w)

	p := s.Portfolio
	fmt.Fprintln(w, "## Portfolio")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total value **%s**, gain %s (%s%%) over %s.\n\n",
		formatMoney(p.TotalValue, currency),
		formatMoney(p.TotalGain, currency),
		p.TotalGainPercent.StringFixed(2),
		plural(p.HoldingsCount, "holding"))
	if len(p.Allocation) > 0 {
		fmt.Fprintln(w, "| Symbol | Value | Allocation |")
		fmt.Fprintln(w, "|:---|---:|---:|")
		for _, a := range p.Allocation {
			fmt.Fprintf(w, "| %s | %s | %s%% |\n", a.Symbol, formatMoney(a.Value, currency), a.Percentage.StringFixed(1))
		}
	}
}

// formatMoney displays amount in the currency's notation, rounded to its minor unit
func formatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), currency).Display()
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// printMarkdown renders md for the terminal, falling back to the raw text
func printMarkdown(md string, width int) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
