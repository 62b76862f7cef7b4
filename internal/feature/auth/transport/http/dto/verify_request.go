package dto

// VerifyReq represents the request body for the /auth/verify endpoint.
type VerifyReq struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}
