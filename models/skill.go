package models

// SkillItem is a single entry of the skills grid
type SkillItem struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// SkillsResponse wraps the skill set. The API answers with a list of these and
// only the first element is meaningful.
type SkillsResponse struct {
	SkillSet []SkillItem `json:"skillSet"`
}
