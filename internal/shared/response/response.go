package response

import (
	"github.com/gin-gonic/gin"
)

// ApiEnvelope is the body of every JSON response. Failures always carry the
// human message in "error" so clients can read it without knowing the code.
type ApiEnvelope struct {
	Ok      bool   `json:"ok"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

func SuccessWithMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:      true,
		Data:    data,
		Message: message,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:      false,
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

// Abort writes the error body and stops the middleware chain.
func Abort(c *gin.Context, status int, errorCode string, message string) {
	Error(c, status, errorCode, message, nil)
	c.Abort()
}
