package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen       = "open"
	StatusClosed     = "closed"
	StatusInProgress = "in-progress"
)

const (
	TypeFullTime   = "Full-time"
	TypePartTime   = "Part-time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"
)

type Posting struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Description        string
	Skills             []string
	Category           string
	Location           string
	Salary             string
	ExperienceRequired string
	JobType            string
	Status             string
	CreatedAt          time.Time
}

// ExternalJob is a transient record scraped from the external source.
// It carries no identity beyond its fields and is never persisted.
type ExternalJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	PostedAt    string `json:"posted_at,omitempty"`
	ExternalURL string `json:"external_url"`
}
