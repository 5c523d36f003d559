package dto

type MatchFactorResponse struct {
	Name         string  `json:"name"`
	Weight       int     `json:"weight"`
	Contribution float64 `json:"contribution"`
}

type MatchResponse struct {
	Score   int                   `json:"score"`
	Factors []MatchFactorResponse `json:"factors"`
}
