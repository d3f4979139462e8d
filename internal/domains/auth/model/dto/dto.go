package dto

import "strings"

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims the username only; passwords are compared as typed.
func (r *SignInRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

type SignInResponse struct {
	Username string `json:"username"`
}
