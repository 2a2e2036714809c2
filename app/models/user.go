package models

// User represents a storefront account as served by the upstream API.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`   // admin | customer | moderator
	Status   string `json:"status"` // active | inactive | banned
}

// UserInput is the user-add form payload. Status defaults to active.
type UserInput struct {
	Username string `json:"username" validate:"required,alpha_dash,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,in=admin,customer,moderator"`
	Status   string `json:"status"`
}
