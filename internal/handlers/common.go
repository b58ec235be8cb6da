package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"trivia-api/internal/middleware"
	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

type CreatedResponse struct {
	Success bool `json:"success" example:"true"`
	Created int  `json:"created" example:"24"`
}

type DeletedResponse struct {
	Success bool `json:"success" example:"true"`
	Deleted int  `json:"deleted" example:"24"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Category = models.Category

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

func newErrorResponse(status int) ErrorResponse {
	return ErrorResponse{Success: false, Error: status, Message: errorMessages[status]}
}

func abortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, newErrorResponse(status))
}

// abortWithError answers with the status that err maps to. Details of err
// are logged, never returned to the client.
func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	attrs := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"request_id", c.GetString(middleware.RequestIDKey),
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Debug("request rejected", attrs...)
	}
	abortWithStatus(c, status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrWriteFailed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// pageParam reads ?page=N, rejecting the request with 400 when N is not a
// positive integer.
func pageParam(c *gin.Context) (services.Page, bool) {
	page, err := services.ParsePage(c.Query("page"))
	if err != nil {
		abortWithError(c, err)
		return 0, false
	}
	return page, true
}

func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		abortWithStatus(c, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// bindBody decodes the JSON body into req. A missing or malformed body is
// unprocessable.
func bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", services.ErrInvalidInput, err))
		return false
	}
	return true
}

// FlexibleID accepts an id sent either as a JSON number or as a numeric
// string, since browser clients often read ids from object keys.
type FlexibleID int

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("id %q is not a number", s)
		}
		*id = FlexibleID(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n)
	return nil
}
