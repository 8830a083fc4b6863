package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable reason codes. Clients branch on these, messages are for humans.
const (
	CodeInvalidPartySize        = "InvalidPartySize"
	CodeDateInPast              = "DateInPast"
	CodeResourceNotFound        = "ResourceNotFound"
	CodeResourceExpired         = "ResourceExpired"
	CodeCapacityExceeded        = "CapacityExceeded"
	CodeMissingOrInvalidFields  = "MissingOrInvalidFields"
	CodeInsufficientCapacity    = "InsufficientCapacity"
	CodeBookingNotFound         = "BookingNotFound"
	CodeAlreadyCancelled        = "AlreadyCancelled"
	CodeInvalidStatusTransition = "InvalidStatusTransition"
	CodeInvalidRequest          = "InvalidRequest"
	CodeUnauthorized            = "Unauthorized"
	CodeForbidden               = "Forbidden"
	CodeSystemError             = "SystemError"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
