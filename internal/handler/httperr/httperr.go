package httperr

import (
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Kind    string            `json:"kind,omitempty"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
}

// AbortWithError keeps err on the gin context for logging and writes the
// public body built from kind, msg and fields.
func AbortWithError(c *gin.Context, status int, err error, kind, msg string, fields map[string]string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error: ErrorBody{
			Kind:    kind,
			Message: msg,
			Fields:  fields,
		},
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithStatus is for failures raised by the transport itself.
func AbortWithStatus(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
	})
}
