// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// It binds both form posts and JSON, and uses Gin's binding tags for
// validation (required fields, email format, password length and match).
type RegisterReq struct {
	Email        string `form:"email" json:"email" binding:"required,email"`
	Password     string `form:"password" json:"password" binding:"required,min=8"`
	Confirmation string `form:"confirmation" json:"confirmation" binding:"required,eqfield=Password"`
	ShopName     string `form:"name" json:"name" binding:"required"`
	Address      string `form:"address" json:"address" binding:"required"`
	Phone        string `form:"phone_number" json:"phone_number" binding:"required"`
}
