package formatter

import (
	"time"

	"github.com/alexanderramin/tidvakt/internal/domain"
)

// FormatTimerList renders the running timers as a table with live elapsed
// time measured at now.
func FormatTimerList(timers []*domain.RunningTimer, now time.Time) string {
	rows := make([][]string, 0, len(timers))
	for _, t := range timers {
		rows = append(rows, []string{
			TruncID(t.ID),
			describe(t.Customer, t.Project),
			Elapsed(t.Elapsed(now)),
			TimerPill(t.Paused()),
			HumanTimestamp(t.StartedAt),
		})
	}
	return RenderTable([]string{"ID", "WORK", "ELAPSED", "STATE", "STARTED"}, rows)
}
