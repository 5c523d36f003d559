package dto

type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
	UserID   string `json:"user_id"`
}
