package response_models

type ProfileData struct {
	ID               string   `json:"id"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	Name             string   `json:"name,omitempty"`
	Avatar           string   `json:"avatar,omitempty"`
	Type             string   `json:"type"`
	SubscriptionPlan string   `json:"subscription_plan"`
	FocusArea        []string `json:"focus_area,omitempty"`
	ContentFrequency string   `json:"content_frequency,omitempty"`
}

type ProfileResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    *ProfileData `json:"data,omitempty"`
}
