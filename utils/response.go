package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}

// JSONFieldErrors sends a validation failure with every offending field listed
func JSONFieldErrors(c *gin.Context, status int, fields map[string]string, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   "validation failed",
		"fields":  fields,
	})
}
