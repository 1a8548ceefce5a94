package models

// Project represents a portfolio project card
type Project struct {
	ID          FlexString `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	LiveLink    string     `json:"liveLink,omitempty"`
	GithubLink  string     `json:"githubLink,omitempty"`
	TechStack   []string   `json:"techStack"`
}
