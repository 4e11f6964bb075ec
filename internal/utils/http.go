package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse acknowledges a create
type CreatedResponse struct {
	Created int `json:"created"`
}

// StatusResponse acknowledges an update or delete
type StatusResponse struct {
	Status string `json:"status"`
}

// SuccessResponse sends data as the JSON body
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// StatusOKResponse sends {"status": status}
func StatusOKResponse(c echo.Context, status string) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: status})
}

// ErrorResponseHandler sends {"error": message} with the given status
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{Error: errorMessage})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// NotImplementedResponse sends a 501 Not Implemented response
func NotImplementedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "not implemented"
	}
	return ErrorResponseHandler(c, http.StatusNotImplemented, errorMessage)
}
