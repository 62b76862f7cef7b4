// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignInReq represents the request body for the /auth/signin endpoint.
// It uses Gin's binding tags for validation (required, email format).
type SignInReq struct {
	Email string `json:"email" binding:"required,email"`
}
