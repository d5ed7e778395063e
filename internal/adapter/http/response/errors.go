package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// FieldError writes a 400 Bad Request response for a problem with named fields.
// Each field maps to message in the details.
func FieldError(c echo.Context, code, message string, fields ...string) error {
	var details map[string]string
	if len(fields) > 0 {
		details = make(map[string]string, len(fields))
		for _, f := range fields {
			details[f] = message
		}
	}
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: message,
	})
}

// MalformedOffer writes a 422 Unprocessable Entity response for an offer
// the provider returned in an unusable shape.
func MalformedOffer(c echo.Context, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, &ErrorDetail{
		Code:    CodeMalformedOffer,
		Message: message,
	})
}

// ProviderFailure writes a 502 Bad Gateway response.
// statusCode is the provider's own HTTP status and is omitted when zero.
func ProviderFailure(c echo.Context, message string, statusCode int) error {
	if message == "" {
		message = MsgProviderFailed
	}
	return c.JSON(http.StatusBadGateway, &ErrorDetail{
		Code:       CodeProviderError,
		Message:    message,
		StatusCode: statusCode,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
