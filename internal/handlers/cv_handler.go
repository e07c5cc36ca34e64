package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvgen_backend/internal/services"
	"cvgen_backend/internal/services/dto"
)

type CVHandler struct {
	BaseHandler
	cvService *services.CVService
}

func NewCVHandler(cvService *services.CVService) *CVHandler {
	return &CVHandler{cvService: cvService}
}

func (h *CVHandler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	cvs := rg.Group("/cvs")
	{
		cvs.POST("/generate", h.Generate)
		cvs.GET("", h.History)
	}
	admin.GET("/cvs", h.HistoryAll)
}

// Generate runs one generation and streams the PDF back. The artifact
// is complete or the response is an error, never a partial document.
func (h *CVHandler) Generate(c *gin.Context) {
	var req dto.GenerateCVRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.cvService.Generate(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func (h *CVHandler) History(c *gin.Context) {
	limit, offset := h.Pagination(c)
	cvs, total, err := h.cvService.History(c.Request.Context(), h.GetDB(c), h.UserID(c), limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, PagedResponse{Items: cvs, Total: total})
}

func (h *CVHandler) HistoryAll(c *gin.Context) {
	limit, offset := h.Pagination(c)
	cvs, err := h.cvService.HistoryAll(c.Request.Context(), h.GetDB(c), limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cvs)
}
