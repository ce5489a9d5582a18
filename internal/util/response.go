package util

import "github.com/gin-gonic/gin"

// Response is the generic JSON body map.
type Response map[string]interface{}

// JSON writes a response body with the given status.
func JSON(c *gin.Context, status int, data Response) {
	c.JSON(status, data)
}

// Error writes an {"error": msg} body with the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Message writes a {"message": msg} body, the shape the auth routes use.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
