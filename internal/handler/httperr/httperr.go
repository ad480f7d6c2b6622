package httperr

import (
	"net/http"

	"order-offer-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest = "invalid_request"
	CodeInternalError  = "internal_error"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type mapping struct {
	sentinel error
	status   int
}

// Order matters: the first sentinel marked on the error wins.
var mappings = []mapping{
	{errs.ErrOfferNotFound, http.StatusNotFound},
	{errs.ErrOfferExpired, http.StatusBadRequest},
	{errs.ErrOrderNotFound, http.StatusNotFound},
	{errs.ErrVehicleNotFound, http.StatusNotFound},
	{errs.ErrZoneNotFound, http.StatusNotFound},
	{errs.ErrVehicleUnavailable, http.StatusBadRequest},
	{errs.ErrPaymentDeclined, http.StatusPaymentRequired},
	{errs.ErrExternalServiceUnavailable, http.StatusBadGateway},
}

// Classify returns the status and stable code for a use case error.
func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.sentinel) {
			return m.status, m.sentinel.Error()
		}
	}
	return http.StatusInternalServerError, CodeInternalError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status and code Classify assigns to err.
func Abort(c *gin.Context, err error) {
	status, code := Classify(err)
	AbortWithError(c, status, err, code, nil)
}

func AbortInvalidRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, CodeInvalidRequest, nil)
}
