package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	appvalidator "cvgen_backend/internal/validator"
	"cvgen_backend/pkg/apperrors"
	"cvgen_backend/pkg/contextkeys"
)

// BaseHandler carries the helpers every handler needs: pulling the
// request-scoped DB, binding payloads, reading auth claims and writing
// errors.
type BaseHandler struct{}

// GetDB returns the *gorm.DB the DB middleware stored for this request.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	return c.MustGet(contextkeys.DBKey).(*gorm.DB)
}

// UserID returns the authenticated caller's id. Only valid behind the
// auth middleware.
func (h *BaseHandler) UserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}

// IsSuperuser reports whether the caller holds the superuser claim.
func (h *BaseHandler) IsSuperuser(c *gin.Context) bool {
	return c.GetBool(contextkeys.IsSuperuserKey)
}

// BindJSON binds and validates a JSON payload, writing the validation
// error response itself. Returns false when the request is already
// answered.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, bindingError(err))
		return false
	}
	return true
}

// Error writes err as the standard error payload.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// Pagination reads page/page_size query params with sane bounds.
func (h *BaseHandler) Pagination(c *gin.Context) (limit, offset int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size < 1 || size > 100 {
		size = 20
	}
	return size, (page - 1) * size
}

// PagedResponse is the envelope for list endpoints.
type PagedResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}

func bindingError(err error) *apperrors.AppError {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		details := make(map[string]string, len(verr))
		for _, fe := range verr {
			details[fe.Field()] = appvalidator.Message(fe)
		}
		return apperrors.ValidationError(details)
	}
	return apperrors.New(apperrors.CodeValidationFailed, "request", "Malformed request body", http.StatusBadRequest)
}
