package response_models

type PlanInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Interval    string  `json:"interval"`
	Status      bool    `json:"status"`
}

type PlansResponse struct {
	Success bool       `json:"success"`
	Data    []PlanInfo `json:"data"`
}

type SetupIntentResponse struct {
	Success      bool   `json:"success"`
	ClientSecret string `json:"client_secret"`
}
