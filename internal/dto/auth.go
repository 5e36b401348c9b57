package dto

// LoginRequest carries the role password check for token issuance.
type LoginRequest struct {
	Role     string `json:"role" binding:"required,oneof=gestor cooperado"`
	Password string `json:"senha" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
