package responses

import "github.com/gin-gonic/gin"

// ErrorResponse is the error envelope the console expects: a single
// human-readable message under "error".
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Error(c *gin.Context, statusCode int, err error, message string) {
	if message == "" && err != nil {
		message = err.Error()
	}
	if err != nil && message != err.Error() {
		message = message + ": " + err.Error()
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// ValidationError reports per-field validation messages alongside the
// top-level error message.
func ValidationError(c *gin.Context, statusCode int, fields map[string]string) {
	c.JSON(statusCode, ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}
