package dto

type LoginRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}
