package apperror

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Respond writes the error body for err and aborts the handler chain.
// Server-side failures are logged with the wrapped cause, which never reaches the client.
func Respond(c *gin.Context, err error) {
	status, body := HTTP(err)
	if status >= http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		}).WithError(err).Error("request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

// RespondNoInput is the reply for a POST or PUT without a JSON body.
func RespondNoInput(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{Message: "No input data provided"})
}

// RespondInvalidID is the reply for a path id that is not a positive integer.
// No resource can have such an id, so it is reported as not found.
func RespondInvalidID(c *gin.Context, resource string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Response{Message: resource + " not found"})
}
