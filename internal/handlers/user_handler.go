package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvgen_backend/internal/services"
	"cvgen_backend/internal/services/dto"
)

type UserHandler struct {
	BaseHandler
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/me", h.Me)
		users.PUT("/me", h.UpdateMe)
		users.DELETE("/me", h.DeleteMe)
	}
	admin.GET("/users", h.List)
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserDTO(user))
}

// DeleteMe removes the account. Facets and sessions go with it through
// the FK cascades; already delivered documents are untouched.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), h.GetDB(c), h.UserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) List(c *gin.Context) {
	limit, offset := h.Pagination(c)
	users, total, err := h.userService.List(c.Request.Context(), h.GetDB(c), limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.UserDTO, len(users))
	for i := range users {
		items[i] = dto.NewUserDTO(&users[i])
	}
	c.JSON(http.StatusOK, PagedResponse{Items: items, Total: total})
}
