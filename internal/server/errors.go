package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	accountdomain "github.com/tirtadata/tirtabill/internal/account/domain"
	billingdomain "github.com/tirtadata/tirtabill/internal/billing/domain"
	satkerdomain "github.com/tirtadata/tirtabill/internal/satker/domain"
	"github.com/tirtadata/tirtabill/pkg/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Result is the uniform response envelope; Status mirrors the HTTP status.
type Result struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
	Data    any      `json:"data"`
}

var ErrInvalidRequest = errors.New("invalid_request")

func respond(c *gin.Context, status int, message string, data any) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Result{
		Status:  status,
		Message: message,
		Errors:  []string{},
		Data:    data,
	})
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func ErrorHandlingMiddleware(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http.errors")
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message, errs := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(lastErr.Err),
			)
		}
		c.AbortWithStatusJSON(status, Result{
			Status:  status,
			Message: message,
			Errors:  errs,
			Data:    gin.H{},
		})
	}
}

func mapError(err error) (int, string, []string) {
	var sortErr *pagination.UnknownSortFieldError
	switch {
	case errors.As(err, &sortErr):
		return http.StatusBadRequest, "Bad Request", []string{sortErr.Error()}
	case isValidationError(err):
		return http.StatusBadRequest, "Bad Request", []string{err.Error()}
	case errors.Is(err, billingdomain.ErrNotFound):
		return http.StatusNotFound, "Tagihan not found", []string{}
	case errors.Is(err, accountdomain.ErrNotFound):
		return http.StatusNotFound, "Data Not Found", []string{}
	case isNotFoundError(err):
		return http.StatusNotFound, "Not Found", []string{}
	case errors.Is(err, billingdomain.ErrAlreadySynced):
		return http.StatusForbidden, "Already Synced", []string{}
	case errors.Is(err, accountdomain.ErrExists):
		return http.StatusConflict, "Master Tni already exists", []string{}
	default:
		return http.StatusInternalServerError, "Server Error", []string{}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, pagination.ErrInvalidPage),
		errors.Is(err, pagination.ErrInvalidLimit),
		errors.Is(err, accountdomain.ErrInvalidNosamw),
		errors.Is(err, billingdomain.ErrPeriodeRequired),
		errors.Is(err, billingdomain.ErrSatkerRequired):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, satkerdomain.ErrNotFound),
		errors.Is(err, billingdomain.ErrNoSourceData),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
