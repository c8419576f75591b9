package models

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
}

type ProductListResponse struct {
	Status   string    `json:"status"`
	Products []Product `json:"products"`
}

type CartResponse struct {
	Status string     `json:"status"`
	Cart   []CartLine `json:"cart"`
}
