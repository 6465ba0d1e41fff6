package model

// Project is one portfolio project from the static catalog.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
	GithubURL    string   `json:"githubURL,omitempty"`
	LiveURL      string   `json:"liveURL,omitempty"`
	ImageURL     string   `json:"imageURL,omitempty"`
	Year         int      `json:"year"`
}
