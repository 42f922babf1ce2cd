package progress

import (
	"fmt"
	"time"
)

// FormatTime renders a duration in seconds as "M:SS". Minutes are
// unbounded; there is no hour component.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDate renders a timestamp as "DD/MM/YYYY" using UTC calendar
// fields, so the rendered day does not drift with the server timezone.
func FormatDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}
