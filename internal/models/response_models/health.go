package response_models

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Name    string `json:"name"`
	Store   string `json:"store"`
	Backend string `json:"llm_provider"`
}
