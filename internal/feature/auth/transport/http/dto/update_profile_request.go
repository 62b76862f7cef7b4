package dto

// UpdateProfileReq represents the request body for PATCH /me.
// Nil fields are left unchanged.
type UpdateProfileReq struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
	Plan  *string `json:"plan"`
}
