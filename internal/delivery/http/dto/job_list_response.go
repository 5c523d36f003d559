package dto

import "github.com/google/uuid"

type JobListResponse struct {
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	Category   string    `json:"category"`
	JobType    string    `json:"job_type"`
	Salary     string    `json:"salary"`
	Skills     []string  `json:"skills"`
	Status     string    `json:"status"`
	PostedDate string    `json:"posted_date"`
}
