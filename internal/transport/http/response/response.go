// Package response fixes the wire shapes of the API: successful reads and
// writes wrap the record in a "data" envelope, failures carry a single
// human-readable "message", and validation failures add per-field messages.
package response

import (
	"github.com/gin-gonic/gin"

	"go-contacts-app/internal/domain"
)

type Envelope struct {
	Data any `json:"data"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

type ValidationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func Data(c *gin.Context, status int, v any) {
	c.JSON(status, Envelope{Data: v})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Message: msg})
}

func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: msg})
}

func Validation(c *gin.Context, status int, verr *domain.ValidationError) {
	c.JSON(status, ValidationBody{Message: verr.Error(), Errors: verr.Fields})
}
