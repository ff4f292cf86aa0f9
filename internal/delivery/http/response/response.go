// Package response owns the JSON envelope. Failures are always
// {"error": "..."} with validation failures as {"errors": ["...", ...]};
// successes return the entity (or {"message": "..."}) directly.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

func ValidationErrors(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": messages})
}

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// BindError translates a gin binding failure. Validator errors become one
// message per failed field; anything else (malformed JSON, wrong types) gets
// a single generic line.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages, fieldMessage(fe))
		}
		ValidationErrors(c, messages)
		return
	}
	Error(c, http.StatusBadRequest, "Invalid request body")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
