package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tidvakt/internal/service"
)

// FormatWeekStatus renders one week's workflow position.
func FormatWeekStatus(st *service.WeekStatus) string {
	var b strings.Builder
	b.WriteString(Header("Week " + st.WeekKey) + "\n")
	b.WriteString(fmt.Sprintf("%-12s %s\n", "State", WeekStatePill(st.State)))
	b.WriteString(fmt.Sprintf("%-12s %s\n", "Logged", Minutes(st.TotalMinutes)))
	if st.SubmittedAt != nil {
		b.WriteString(fmt.Sprintf("%-12s %s\n", "Submitted", st.SubmittedAt.Format("2006-01-02 15:04")))
	}
	if st.ApprovedAt != nil {
		b.WriteString(fmt.Sprintf("%-12s %s\n", "Approved", st.ApprovedAt.Format("2006-01-02 15:04")))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatWeekList renders a manager listing of weeks with their totals.
func FormatWeekList(weeks []*service.WeekStatus) string {
	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		submitted := ""
		if w.SubmittedAt != nil {
			submitted = w.SubmittedAt.Format("2006-01-02")
		}
		rows = append(rows, []string{
			w.WeekKey,
			WeekStatePill(w.State),
			Minutes(w.TotalMinutes),
			submitted,
		})
	}
	return RenderTable([]string{"WEEK", "STATE", "LOGGED", "SUBMITTED"}, rows)
}
