package services

import (
	"sort"

	"github.com/Adilzhan707/Recipe_Social/internal/models"
)

// EngagementScore computes the trending score for one activity from its
// interaction counts. Comments weigh more than likes as the stronger
// engagement signal; the same weights rank tag trends elsewhere in the
// system, kept identical for predictability. There is no recency decay:
// trending queries are expected to be pre-filtered to a time frame.
func EngagementScore(state models.InteractionState) int {
	return state.LikeCount*2 + state.CommentCount*3
}

// sortByEngagement orders activities by score descending. Ties fall back to
// CreatedAt descending and finally the id, so the resulting order is total
// and repeated calls over the same data emit identical sequences.
func sortByEngagement(items []models.EnrichedActivity) {
	sort.SliceStable(items, func(i, j int) bool {
		si, sj := 0, 0
		if items[i].EngagementScore != nil {
			si = *items[i].EngagementScore
		}
		if items[j].EngagementScore != nil {
			sj = *items[j].EngagementScore
		}
		if si != sj {
			return si > sj
		}
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID.Hex() > items[j].ID.Hex()
	})
}
