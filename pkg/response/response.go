package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Codes for errors that do not come from the rowid domain.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// Response is the JSON envelope of every API response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success sends a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Fail aborts the request with an error envelope. The message is also added
// to c.Errors so the request log records it.
func Fail(c *gin.Context, status int, code, message string) {
	_ = c.Error(errors.New(message)).SetMeta(code)
	c.AbortWithStatusJSON(status, Response{
		Error: &ErrorInfo{Code: code, Message: message},
	})
}

// BadRequest fails with 400 for a request that could not be bound.
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, CodeBadRequest, message)
}

// InvalidArgument fails with 400 and a domain error code.
func InvalidArgument(c *gin.Context, code, message string) {
	Fail(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, CodeNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, CodeInternal, message)
}
