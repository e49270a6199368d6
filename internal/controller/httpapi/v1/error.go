package v1

import (
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/estatekit/console/internal/repository/upstream"
	"github.com/estatekit/console/internal/usecase/refdata"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr validator.ValidationErrors
		authErr      upstream.AuthError
		reqErr       upstream.RequestError
		netErr       net.Error
	)

	switch {
	case errors.Is(err, upstream.ErrMissingAuthKey):
		msg := err.Error()
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: msg, Message: msg})
	case errors.As(err, &authErr):
		msg := authErr.Message
		c.AbortWithStatusJSON(http.StatusUnauthorized, response{Error: msg, Message: msg})
	case errors.Is(err, refdata.ErrUnknownResource):
		msg := err.Error()
		c.AbortWithStatusJSON(http.StatusNotFound, response{Error: msg, Message: msg})
	case errors.As(err, &validatorErr):
		msg := validatorErr.Error()
		c.AbortWithStatusJSON(http.StatusBadRequest, response{Error: msg, Message: msg})
	case errors.As(err, &reqErr):
		upstreamErrorHandle(c, reqErr)
	case errors.As(err, &netErr):
		msg := netErr.Error()
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, response{Error: msg, Message: msg})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, response{Error: "general error", Message: "general error"})
	}
}

// upstreamErrorHandle forwards the platform's status where it is meaningful
// to the caller, and reports transport failures as a bad gateway.
func upstreamErrorHandle(c *gin.Context, err upstream.RequestError) {
	status := err.StatusCode
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}

	msg := err.Error()
	c.AbortWithStatusJSON(status, response{Error: msg, Message: msg})
}
