// Package response writes the envelope every handler shares:
// {"success":true,"data":...} on the happy path, and
// {"success":false,"error":{code,message[,details]}} otherwise.
package response

import "github.com/gin-gonic/gin"

// Success wraps data in the success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a machine-readable code plus a human-readable message.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message),
	})
}

// ErrorWithDetails additionally attaches a details payload, e.g. the
// field map produced by struct validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	body := errorBody(code, message)
	body["details"] = details
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   body,
	})
}

func errorBody(code, message string) gin.H {
	return gin.H{
		"code":    code,
		"message": message,
	}
}
