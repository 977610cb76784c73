package util

import "github.com/gin-gonic/gin"

func SuccessResponse() gin.H {
	return gin.H{"success": true}
}

func FailedResponse(msg string) gin.H {
	return gin.H{"error": msg}
}
