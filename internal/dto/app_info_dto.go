package dto

type AppInfoResponse struct {
	Title string `json:"title"`
	Logo  string `json:"logo"`
}

type UpdateAppInfoRequest struct {
	Title string `json:"title" validate:"required,min=1"`
	Logo  string `json:"logo"`
}
