package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvgen_backend/internal/services"
	"cvgen_backend/internal/services/dto"
)

// ProfileHandler serves the authenticated user's facets. The owner is
// always the caller; facet ids in the path are only honored when the
// row belongs to them.
type ProfileHandler struct {
	BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	{
		profile.GET("/experiences", h.ListExperiences)
		profile.POST("/experiences", h.AddExperience)
		profile.PUT("/experiences/:id", h.UpdateExperience)
		profile.DELETE("/experiences/:id", h.DeleteExperience)

		profile.GET("/educations", h.ListEducations)
		profile.POST("/educations", h.AddEducation)
		profile.PUT("/educations/:id", h.UpdateEducation)
		profile.DELETE("/educations/:id", h.DeleteEducation)

		profile.GET("/projects", h.ListProjects)
		profile.POST("/projects", h.AddProject)
		profile.PUT("/projects/:id", h.UpdateProject)
		profile.DELETE("/projects/:id", h.DeleteProject)

		profile.GET("/skills", h.ListSkills)
		profile.POST("/skills", h.AddSkill)
		profile.DELETE("/skills/:id", h.RemoveSkill)

		profile.GET("/languages", h.ListLanguages)
		profile.POST("/languages", h.AddLanguage)
		profile.PUT("/languages/:id", h.UpdateLanguage)
		profile.DELETE("/languages/:id", h.RemoveLanguage)

		profile.GET("/social-networks", h.ListSocialNetworks)
		profile.POST("/social-networks", h.AddSocialNetwork)
		profile.DELETE("/social-networks/:id", h.RemoveSocialNetwork)

		profile.GET("/roles", h.ListRoles)
		profile.POST("/roles", h.AddRole)
		profile.DELETE("/roles/:id", h.RemoveRole)
	}
}

// Experiences

func (h *ProfileHandler) ListExperiences(c *gin.Context) {
	items, err := h.profileService.ListExperiences(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req dto.ExperienceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.AddExperience(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	var req dto.ExperienceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.UpdateExperience(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	if err := h.profileService.DeleteExperience(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Educations

func (h *ProfileHandler) ListEducations(c *gin.Context) {
	items, err := h.profileService.ListEducations(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req dto.EducationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.AddEducation(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	var req dto.EducationRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.UpdateEducation(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	if err := h.profileService.DeleteEducation(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Projects

func (h *ProfileHandler) ListProjects(c *gin.Context) {
	items, err := h.profileService.ListProjects(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProfileHandler) AddProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.AddProject(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) UpdateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.UpdateProject(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ProfileHandler) DeleteProject(c *gin.Context) {
	if err := h.profileService.DeleteProject(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Skills

func (h *ProfileHandler) ListSkills(c *gin.Context) {
	items, err := h.profileService.ListSkills(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProfileHandler) AddSkill(c *gin.Context) {
	var req dto.UserSkillRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.AddSkill(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	if err := h.profileService.RemoveSkill(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Languages

func (h *ProfileHandler) ListLanguages(c *gin.Context) {
	items, err := h.profileService.ListLanguages(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProfileHandler) AddLanguage(c *gin.Context) {
	var req dto.UserLanguageRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.AddLanguage(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) UpdateLanguage(c *gin.Context) {
	var req dto.UserLanguageRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.UpdateLanguage(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ProfileHandler) RemoveLanguage(c *gin.Context) {
	if err := h.profileService.RemoveLanguage(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Social networks

func (h *ProfileHandler) ListSocialNetworks(c *gin.Context) {
	items, err := h.profileService.ListSocialNetworks(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProfileHandler) AddSocialNetwork(c *gin.Context) {
	var req dto.UserSocialNetworkRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.AddSocialNetwork(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) RemoveSocialNetwork(c *gin.Context) {
	if err := h.profileService.RemoveSocialNetwork(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Roles

func (h *ProfileHandler) ListRoles(c *gin.Context) {
	items, err := h.profileService.ListRoles(c.Request.Context(), h.GetDB(c), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProfileHandler) AddRole(c *gin.Context) {
	var req dto.UserRoleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.profileService.AddRole(c.Request.Context(), h.GetDB(c), h.UserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProfileHandler) RemoveRole(c *gin.Context) {
	if err := h.profileService.RemoveRole(c.Request.Context(), h.GetDB(c), h.UserID(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
