package request_models

type CreateLayerRequest struct {
	Name       string   `json:"name" binding:"required"`
	Type       string   `json:"type" binding:"required,oneof=option text"`
	Points     int64    `json:"points"`
	Options    []string `json:"options"`
	IsFreeText bool     `json:"is_free_text"`
}

type CreateDigRequest struct {
	Title  string               `json:"title" binding:"required"`
	Type   []string             `json:"type" binding:"required,min=1"`
	Layers []CreateLayerRequest `json:"layers" binding:"required,min=1,dive"`
}

type AnswerLayerRequest struct {
	LayerID string `json:"layer_id" binding:"required"`
	Answer  string `json:"answer" binding:"required"`
}
