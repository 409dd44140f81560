package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/tidvakt/internal/domain"
	"github.com/alexanderramin/tidvakt/internal/service"
)

// FormatEntryList renders entries grouped by calendar day, newest day first,
// with a per-day subtotal. The input is expected ordered by date descending,
// as the ledger returns it.
func FormatEntryList(entries []*domain.TimeEntry) string {
	var b strings.Builder

	var day string
	var dayTotal int
	flush := func() {
		if day != "" {
			b.WriteString(Dim(fmt.Sprintf("  %s total\n", Minutes(dayTotal))))
		}
	}

	for _, e := range entries {
		d := e.Date.Format("2006-01-02")
		if d != day {
			flush()
			day = d
			dayTotal = 0
			b.WriteString(Bold(HumanDate(e.Date)) + Dim(" "+d) + "\n")
		}
		dayTotal += e.Minutes

		line := fmt.Sprintf("  %s  %6s  %s",
			TruncID(e.ID), Minutes(e.Minutes), describe(e.Customer, e.Project))
		if e.Note != "" {
			line += Dim("  " + e.Note)
		}
		if e.BilledAt != nil {
			line += "  " + BilledPill(true)
		}
		b.WriteString(line + "\n")
	}
	flush()

	return strings.TrimRight(b.String(), "\n")
}

// FormatAggregate renders a range rollup: total plus per-day, per-customer
// and per-project breakdowns.
func FormatAggregate(agg *service.Aggregate) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s to %s",
		agg.From.Format("2006-01-02"), agg.To.Format("2006-01-02"))))
	b.WriteString("\n" + Bold("Total ") + Minutes(agg.TotalMinutes) + "\n")

	writeBreakdown := func(title string, m map[string]int) {
		if len(m) == 0 {
			return
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\n" + Bold(title) + "\n")
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("  %-24s %s\n", k, Minutes(m[k])))
		}
	}

	writeBreakdown("By day", agg.ByDay)
	writeBreakdown("By customer", agg.ByCustomer)
	writeBreakdown("By project", agg.ByProject)

	return strings.TrimRight(b.String(), "\n")
}
