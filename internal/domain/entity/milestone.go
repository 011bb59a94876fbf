package entity

// Milestone is a one-time bonus paid when the verified pickup count reaches Threshold.
type Milestone struct {
	Key         string `json:"key"`
	Threshold   int64  `json:"threshold"`
	Tokens      int64  `json:"tokens"`
	Description string `json:"description"`
}

// MilestoneProgress describes how far a collector is from the next milestone.
type MilestoneProgress struct {
	Milestone   string  `json:"milestone"`
	Tokens      int64   `json:"tokens"`
	Description string  `json:"description"`
	Progress    float64 `json:"progress"` // percent
	Current     int64   `json:"current"`
	Target      int64   `json:"target"`
}
