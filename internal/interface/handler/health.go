package handler

import "github.com/gin-gonic/gin"

func Health(c *gin.Context) {
	// Make sure this never gets cached
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
