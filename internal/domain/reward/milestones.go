package reward

import "reclaim/internal/domain/entity"

var milestones = []entity.Milestone{
	{Key: "first_pickup", Threshold: 1, Tokens: 50, Description: "First verified pickup"},
	{Key: "ten_pickups", Threshold: 10, Tokens: 100, Description: "10 verified pickups"},
	{Key: "fifty_pickups", Threshold: 50, Tokens: 500, Description: "50 verified pickups"},
	{Key: "hundred_pickups", Threshold: 100, Tokens: 1000, Description: "100 verified pickups"},
}

// Milestones returns a copy of the table in ascending threshold order.
func Milestones() []entity.Milestone {
	out := make([]entity.Milestone, len(milestones))
	copy(out, milestones)

	return out
}

// CheckMilestones returns milestones whose threshold equals count exactly.
// A count that jumps past a threshold between checks never reports it.
func CheckMilestones(verifiedPickups int64) []entity.Milestone {
	var achieved []entity.Milestone
	for _, m := range milestones {
		if m.Threshold == verifiedPickups {
			achieved = append(achieved, m)
		}
	}

	return achieved
}

// NextMilestone returns progress toward the first threshold above count, nil once all are passed.
func NextMilestone(verifiedPickups int64) *entity.MilestoneProgress {
	for _, m := range milestones {
		if m.Threshold <= verifiedPickups {
			continue
		}

		return &entity.MilestoneProgress{
			Milestone:   m.Key,
			Tokens:      m.Tokens,
			Description: m.Description,
			Progress:    float64(verifiedPickups) / float64(m.Threshold) * 100,
			Current:     verifiedPickups,
			Target:      m.Threshold,
		}
	}

	return nil
}
