package validation

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-registration-backend/internal/apperror"
)

// BindJSON decodes the request body into dst. On failure it writes the error
// response and returns false.
func BindJSON(c *gin.Context, dst interface{}) bool {
	body, err := c.GetRawData()
	if err != nil {
		apperror.Respond(c, apperror.NewValidation(SchemaField, "Invalid JSON body."))
		return false
	}

	if err := DecodeJSON(body, dst); err != nil {
		if errors.Is(err, ErrNoInput) {
			apperror.RespondNoInput(c)
			return false
		}
		apperror.Respond(c, err)
		return false
	}
	return true
}
