package dto

type GenerateDescriptionRequest struct {
	Title string `json:"title"`
}

type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}
