package utils

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope, success or failure.
type Response struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Error      bool   `json:"error"`
	Data       any    `json:"data"`
}

func Success(c *gin.Context, message string, statusCode int, data any) {
	c.JSON(statusCode, Response{
		Message:    message,
		StatusCode: statusCode,
		Error:      false,
		Data:       data,
	})
}

func Error(c *gin.Context, message string, statusCode int, data any) {
	c.JSON(statusCode, Response{
		Message:    message,
		StatusCode: statusCode,
		Error:      true,
		Data:       data,
	})
}
