package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shiftmaster/internal/auth"
	apperrors "shiftmaster/internal/errors"
	"shiftmaster/internal/middleware"
)

// CustomValidator wraps validator for Echo. Field names in errors use the json tag.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator installed on echo.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// errorResponse maps a domain error to its HTTP form. Server-side failures are logged
// and returned without detail.
func errorResponse(c echo.Context, err error) error {
	mapped := apperrors.MapErrorToHTTP(err)
	if mapped.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}
	return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
}

func invalidRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return invalidRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			switch fe.Tag() {
			case "required":
				return errorResponse(c, fmt.Errorf("%w: %s", apperrors.ErrMissingField, fe.Field()))
			case "datetime":
				return errorResponse(c, apperrors.ErrInvalidDate)
			}
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: fmt.Sprintf("invalid value for field %s", fe.Field()),
				Code:  "VALIDATION_ERROR",
			})
		}
		return invalidRequest(err.Error())
	}
	return nil
}

// actor returns the authenticated identity for the request.
func actor(c echo.Context) (auth.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return auth.Identity{}, errorResponse(c, apperrors.ErrMissingToken)
	}
	return identity, nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errorResponse(c, apperrors.ErrInvalidID)
	}
	return uint(id), nil
}
