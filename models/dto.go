package models

type SignupRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// AddToCartRequest leaves Quantity nil when the client omits it.
type AddToCartRequest struct {
	ProductID int  `json:"product_id" form:"product_id"`
	Quantity  *int `json:"quantity,omitempty" form:"quantity"`
}

type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}
