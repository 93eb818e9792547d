package dto

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}
