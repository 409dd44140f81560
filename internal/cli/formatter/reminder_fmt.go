package formatter

import (
	"github.com/alexanderramin/tidvakt/internal/domain"
)

// FormatReminderList renders scheduled reminders as a table.
func FormatReminderList(reminders []*domain.Reminder) string {
	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		state := StyleBlue.Render("○ Pending")
		when := r.ScheduledFor.Format("2006-01-02 15:04")
		if r.Sent {
			state = StyleDim.Render("✔ Sent")
		} else if r.SnoozedUntil != nil {
			state = StyleYellow.Render("⏱ Snoozed")
			when = r.SnoozedUntil.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			r.BillID,
			string(r.Kind),
			when,
			state,
		})
	}
	return RenderTable([]string{"ID", "BILL", "KIND", "WHEN", "STATE"}, rows)
}
