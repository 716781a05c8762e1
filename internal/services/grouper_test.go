package services

import (
	"testing"
	"time"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateLabel(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"same day morning", time.Date(2025, time.March, 15, 1, 0, 0, 0, time.UTC), "Today"},
		{"previous day", time.Date(2025, time.March, 14, 23, 59, 0, 0, time.UTC), "Yesterday"},
		{"three days back", time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC), "3 days ago"},
		{"six days back", time.Date(2025, time.March, 9, 10, 0, 0, 0, time.UTC), "6 days ago"},
		{"a week back", time.Date(2025, time.March, 8, 10, 0, 0, 0, time.UTC), "March 8, 2025"},
		{"last year", time.Date(2024, time.December, 31, 10, 0, 0, 0, time.UTC), "December 31, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateLabel(tt.ts, now))
		})
	}
}

// A spring-forward day is only 23 hours long; labels on either side of the
// transition must still advance by whole calendar days.
func TestDateLabelAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST began March 9, 2025 in America/New_York.
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, loc)

	assert.Equal(t, "Today", DateLabel(time.Date(2025, time.March, 10, 8, 0, 0, 0, loc), now))
	assert.Equal(t, "Yesterday", DateLabel(time.Date(2025, time.March, 9, 10, 0, 0, 0, loc), now))
	assert.Equal(t, "2 days ago", DateLabel(time.Date(2025, time.March, 8, 10, 0, 0, 0, loc), now))
	assert.Equal(t, "6 days ago", DateLabel(time.Date(2025, time.March, 4, 10, 0, 0, 0, loc), now))
	assert.Equal(t, "March 3, 2025", DateLabel(time.Date(2025, time.March, 3, 10, 0, 0, 0, loc), now))
}

func TestGroupByDateEmptyInput(t *testing.T) {
	groups := GroupByDate(nil, time.Now())
	assert.Empty(t, groups)
	assert.NotNil(t, groups)
}

func TestGroupByDateContiguousRuns(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	items := []models.EnrichedActivity{
		itemAt(now.Add(-1 * time.Hour)),
		itemAt(now.Add(-2 * time.Hour)),
		itemAt(now.Add(-26 * time.Hour)),
		itemAt(now.Add(-3 * 24 * time.Hour)),
	}

	groups := GroupByDate(items, now)

	require.Len(t, groups, 3)
	assert.Equal(t, "Today", groups[0].DateLabel)
	assert.Len(t, groups[0].Activities, 2)
	assert.Equal(t, "Yesterday", groups[1].DateLabel)
	assert.Len(t, groups[1].Activities, 1)
	assert.Equal(t, "3 days ago", groups[2].DateLabel)
	assert.Len(t, groups[2].Activities, 1)
}

// Grouping is a display concern layered over whatever order the assembler
// produced. When a trending sort interleaves days, the same label may open
// more than one group and the flattened output still matches the input.
func TestGroupByDatePreservesOrder(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	items := []models.EnrichedActivity{
		itemAt(now.Add(-1 * time.Hour)),  // Today
		itemAt(now.Add(-30 * time.Hour)), // Yesterday
		itemAt(now.Add(-2 * time.Hour)),  // Today again, separated
		itemAt(now.Add(-31 * time.Hour)), // Yesterday again
	}

	groups := GroupByDate(items, now)

	require.Len(t, groups, 4)
	assert.Equal(t, []string{"Today", "Yesterday", "Today", "Yesterday"}, groupLabels(groups))

	var flattened []models.EnrichedActivity
	for _, g := range groups {
		flattened = append(flattened, g.Activities...)
	}
	require.Len(t, flattened, len(items))
	for i := range items {
		assert.Equal(t, items[i].ID, flattened[i].ID, "order must survive grouping")
	}
}

func itemAt(ts time.Time) models.EnrichedActivity {
	return models.EnrichedActivity{
		ID:        oidFromSeed(ts.String()),
		Type:      models.ActivityCreated,
		CreatedAt: ts,
	}
}

func groupLabels(groups []models.ActivityGroup) []string {
	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.DateLabel)
	}
	return labels
}
