package models

// Experience represents one employment record on the timeline
type Experience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate,omitempty"`
	CurrentlyWorking bool     `json:"currentlyWorking"`
	Description      string   `json:"description"`
	TechnologiesUsed []string `json:"TechnologiesUsed"`
}
