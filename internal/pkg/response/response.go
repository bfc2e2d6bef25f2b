package response

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Success writes the payload as-is. Front-end consumers expect bare resource
// objects and arrays, so no data wrapper is added.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Message writes a {"message": msg} body.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"detail":  message,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"detail":  message,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

// Internal records err on the context for ErrorLogger and writes a generic 500.
func Internal(c *gin.Context, err error) {
	if err == nil {
		err = errors.New("internal error")
	}
	_ = c.Error(err)
	Error(c, 500, "INTERNAL_ERROR", "Internal server error")
}
