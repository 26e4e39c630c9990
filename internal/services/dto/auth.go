package dto

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse mirrors the public API shape for both auth operations.
// Token is null for signup; signin fills it.
type AuthResponse struct {
	Token   *string `json:"token"`
	Message string  `json:"message"`
	Name    string  `json:"name"`
}
