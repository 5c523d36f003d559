package dto

type ExternalJobResponse struct {
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	PostedAt    string `json:"posted_at,omitempty"`
	ExternalURL string `json:"external_url"`
}

type ExternalSearchResponse struct {
	Count int                   `json:"count"`
	Jobs  []ExternalJobResponse `json:"jobs"`
}
