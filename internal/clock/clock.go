// Package clock formats the dashboard's Singapore time display.
package clock

import (
	"context"
	"time"
)

const layout = "02 January 2006, 03:04:05 pm"

// Singapore is the Asia/Singapore zone, falling back to a fixed UTC+8 zone
// when tzdata isn't available.
var Singapore = loadSingapore()

func loadSingapore() *time.Location {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		return time.FixedZone("SGT", 8*60*60)
	}
	return loc
}

// Format returns the timestamp line shown above the chart.
func Format(t time.Time) string {
	return "Data as of: " + t.In(Singapore).Format(layout) + " SGT"
}

// Run calls fn with the formatted current time right away and then on every
// tick until ctx is done.
func Run(ctx context.Context, interval time.Duration, now func() time.Time, fn func(string)) {
	if now == nil {
		now = time.Now
	}

	fn(Format(now()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(Format(now()))
		}
	}
}
