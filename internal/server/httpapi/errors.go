package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/labstack/echo/v4"
)

// response is the envelope of every API answer.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	UserID  string `json:"userID,omitempty"`
	StoreID string `json:"storeID,omitempty"`
	Rotated *bool  `json:"rotated,omitempty"`
}

// statusFor maps a service error to an HTTP status and a client message.
func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code, fmt.Sprint(he.Message)
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrPolicyViolation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, "Email already registered."
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "User not found."
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, common.ErrDependency):
		return http.StatusServiceUnavailable, "Storage unavailable, please retry."
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "request error", "path", c.Path(), "error", err.Error())
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, response{Success: false, Message: msg})
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "writing error response", "error", err.Error())
	}
}
