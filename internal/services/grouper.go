package services

import (
	"fmt"
	"math"
	"time"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
)

// DateLabel returns the viewer-facing label for ts relative to now. Both
// timestamps are compared by calendar day in now's location.
func DateLabel(ts, now time.Time) string {
	local := ts.In(now.Location())
	days := daysBetween(local, now)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return local.Format("January 2, 2006")
}

func daysBetween(ts, now time.Time) int {
	tsDay := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, now.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Consecutive midnights are 23 or 25 hours apart across a DST shift, so
	// the quotient must be rounded, not truncated.
	return int(math.Round(nowDay.Sub(tsDay).Hours() / 24))
}

// GroupByDate buckets activities under relative-date labels while preserving
// the incoming order: a new group opens only when the label differs from the
// currently open one. Grouping never re-sorts, so a trending feed may emit
// the same label more than once when a higher-ranked item of another day
// sits between two same-day items. Every label is computed against the one
// now snapshot passed in, never re-read per item.
func GroupByDate(activities []models.EnrichedActivity, now time.Time) []models.ActivityGroup {
	groups := []models.ActivityGroup{}
	for _, activity := range activities {
		label := DateLabel(activity.CreatedAt, now)
		if len(groups) == 0 || groups[len(groups)-1].DateLabel != label {
			groups = append(groups, models.ActivityGroup{DateLabel: label})
		}
		last := &groups[len(groups)-1]
		last.Activities = append(last.Activities, activity)
	}
	return groups
}
