package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ApiResponse is the envelope every admin and storefront endpoint returns.
type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta,omitempty"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
	RequestID       string       `json:"request_id,omitempty"`
}

type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"3"`
}

// RateLimiter is the caller's budget after this request.
type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// Context keys read when building the envelope.
const (
	RateLimiterKey = "rateLimiter"
	requestIDKey   = "request_id"
)

// newResponse fills the request-scoped fields. c may be nil in unit tests.
func newResponse(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{Message: message}
	if c == nil {
		return resp
	}
	if v, ok := c.Get(RateLimiterKey); ok {
		resp.Rate, _ = v.(*RateLimiter)
	}
	resp.RequestID = c.GetString(requestIDKey)
	if c.Request != nil {
		resp.RequestedEntity = c.Request.Method + " " + c.FullPath()
	}
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := newResponse(c, message)
	resp.Data = data
	return resp
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := SuccessResponse(c, message, data)
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := newResponse(c, message)
	resp.Error = true
	return resp
}
