package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/vaxboard/internal/domain"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError
	for walk := err; walk != nil; walk = errors.Unwrap(walk) {
		if ce, ok := walk.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		var he *echo.HTTPError
		if errors.As(walk, &he) {
			code = he.Code
			break
		}
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
