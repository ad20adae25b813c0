package api

type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Problems int    `json:"problems"`
}

type ProblemInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
