package user

import (
	"time"

	"github.com/google/uuid"
)

type Preferences struct {
	Category  string
	Location  string
	JobType   string
	MinSalary string
}

type CandidateProfile struct {
	ID          uuid.UUID
	Skills      []string
	Location    string
	Experience  string
	Preferences Preferences
	CreatedAt   time.Time
}
