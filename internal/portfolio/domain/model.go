package domain

import "time"

// Project categories. The category filter additionally accepts CategoryAll.
const (
	CategoryDigitalTwin   = "digital-twin"
	CategoryVisualization = "visualization"
	CategoryAIApplication = "ai-application"
	CategoryAll           = "all"
)

// ValidCategory reports whether c is one of the three project categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryDigitalTwin, CategoryVisualization, CategoryAIApplication:
		return true
	}
	return false
}

// Project is the list-item shape of a portfolio project. It is
// storage-agnostic and shared across repository and HTTP layers.
type Project struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	Category     string    `json:"category"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectLinks holds the optional external links of a project. A missing
// link type is absence, not an error.
type ProjectLinks struct {
	Demo    string `json:"demo,omitempty"`
	GitHub  string `json:"github,omitempty"`
	Article string `json:"article,omitempty"`
}

// KPI is a labelled metric shown on the project detail page. Order matters.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// TitledSection is an ordered narrative block with a heading.
type TitledSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectDetail extends Project with the fields used only by the
// single-item view. All slice-valued fields keep their authored order.
type ProjectDetail struct {
	Project
	Role              string          `json:"role"`
	Period            string          `json:"period"`
	TechStack         []string        `json:"techStack"`
	Links             ProjectLinks    `json:"links"`
	KPIs              []KPI           `json:"kpis"`
	Background        string          `json:"background"`
	Responsibilities  []string        `json:"responsibilities"`
	TechnicalSolution []TitledSection `json:"technicalSolution"`
	Challenges        []TitledSection `json:"challenges"`
	Screenshots       []string        `json:"screenshots"`
}

// ContactSubmission is one contact form entry. ID and CreatedAt are
// generated by the data service, never by a storage backend.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
