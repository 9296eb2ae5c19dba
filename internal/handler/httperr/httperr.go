package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error body. Status rides along for the error
// middleware but is never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// WithDetail attaches a machine-readable payload, such as the stock
// shortfall breakdown on a conflict.
func (r Response) WithDetail(detail any) Response {
	r.Detail = detail
	return r
}

// AbortWithError keeps the original error on the context for logging
// while the client sees only the public response.
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
