// Package dto defines data transfer objects for the menu feature's HTTP transport layer.
package dto

// AddItemReq represents the request body for the /add endpoint.
// Category membership and price format are validated by the usecase.
type AddItemReq struct {
	Category string `form:"category" json:"category" binding:"required"`
	Item     string `form:"item" json:"item" binding:"required"`
	Price    string `form:"price" json:"price" binding:"required"`
}

// RemoveItemReq represents the request body for the /remove endpoint.
type RemoveItemReq struct {
	Item string `form:"item" json:"item" binding:"required"`
}

// StyleReq represents the style selection posted to the /menu endpoint.
type StyleReq struct {
	Style string `form:"style" json:"style" binding:"required"`
}
