package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error envelope. Code carries a machine-readable
// discriminator when one exists (e.g. SLOT_TAKEN); most errors only have a
// message.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
