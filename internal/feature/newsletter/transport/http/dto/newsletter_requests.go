// Package dto defines data transfer objects for the newsletter feature's HTTP transport layer.
package dto

// SubscribeReq represents the newsletter signup form posted to /.
type SubscribeReq struct {
	Email string `form:"subscriber" json:"subscriber" binding:"required,email"`
}

// ContactReq represents the contact form posted to /contact.
type ContactReq struct {
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}
