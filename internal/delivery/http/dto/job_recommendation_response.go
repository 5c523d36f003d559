package dto

import "github.com/google/uuid"

type JobRecommendationResponse struct {
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	JobType    string    `json:"job_type"`
	Salary     string    `json:"salary"`
	Score      int       `json:"score"`
	PostedDate string    `json:"posted_date"`
}
