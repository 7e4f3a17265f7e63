package handlers

import "github.com/gin-gonic/gin"

// envelope is the success half of the API envelope:
// {"success": true, "data": ..., "message": "..."}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}
