package response_models

import "time"

type LayerData struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Points     int64    `json:"points"`
	Options    []string `json:"options,omitempty"`
	IsFreeText bool     `json:"is_free_text"`
}

type AssignedDig struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Type   []string    `json:"type"`
	Layers []LayerData `json:"layers"`

	Completed bool `json:"completed"`

	// Weekly assignments carry Position; daily ones carry AssignedAt and
	// DailyDigNumber.
	Position       int        `json:"position,omitempty"`
	AssignedAt     *time.Time `json:"assignedAt,omitempty"`
	DailyDigNumber int        `json:"dailyDigNumber,omitempty"`
}

type DigAssignmentData struct {
	Digs []AssignedDig `json:"digs"`

	AllCompleted   bool       `json:"allCompleted,omitempty"`
	CompletedCount int        `json:"completedCount,omitempty"`
	NextWeekStart  *time.Time `json:"nextWeekStart,omitempty"`

	HasIncomplete    bool `json:"hasIncomplete,omitempty"`
	CurrentDigNumber int  `json:"currentDigNumber,omitempty"`
	TotalToday       int  `json:"totalToday,omitempty"`

	Mode string `json:"mode,omitempty"`
}

type DigAssignmentResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *DigAssignmentData `json:"data,omitempty"`
}

type DigCompletionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DigProgressData struct {
	Type string `json:"type"` // "free" | "paid"

	TotalThisWeek     int  `json:"totalThisWeek,omitempty"`
	CompletedThisWeek int  `json:"completedThisWeek,omitempty"`
	AllCompleted      bool `json:"allCompleted,omitempty"`

	TotalToday      int  `json:"totalToday,omitempty"`
	CompletedToday  int  `json:"completedToday,omitempty"`
	RemainingToday  int  `json:"remainingToday,omitempty"`
	HasIncomplete   bool `json:"hasIncomplete,omitempty"`
	IncompleteCount int  `json:"incompleteCount,omitempty"`
}

type DigProgressResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Data    *DigProgressData `json:"data,omitempty"`
}
