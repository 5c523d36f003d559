package dto

type JobCardResponse struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	PostedAt    string `json:"posted_at,omitempty"`
	Salary      string `json:"salary,omitempty"`
	JobType     string `json:"job_type,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
}

type ChatResponse struct {
	Message string            `json:"message"`
	Jobs    []JobCardResponse `json:"jobs"`
}
