package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvgen_backend/internal/models"
	"cvgen_backend/internal/services"
	"cvgen_backend/internal/services/dto"
)

// CatalogHandler serves the shared reference data. Reads are available
// to any authenticated user (the profile editor needs them); writes are
// admin only.
type CatalogHandler struct {
	BaseHandler
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	catalogs := rg.Group("/catalogs")
	adminCatalogs := admin.Group("/catalogs")

	svc := h.catalogService
	registerCatalog(catalogs, adminCatalogs, &h.BaseHandler, "/skills", svc.Skills,
		func(id, name string) *models.Skill {
			item := &models.Skill{Name: name}
			item.ID = id
			return item
		})
	registerCatalog(catalogs, adminCatalogs, &h.BaseHandler, "/languages", svc.Languages,
		func(id, name string) *models.Language {
			item := &models.Language{Name: name}
			item.ID = id
			return item
		})
	registerCatalog(catalogs, adminCatalogs, &h.BaseHandler, "/roles", svc.Roles,
		func(id, name string) *models.Role {
			item := &models.Role{Name: name}
			item.ID = id
			return item
		})
	registerCatalog(catalogs, adminCatalogs, &h.BaseHandler, "/experience-companies", svc.ExperienceCompanies,
		func(id, name string) *models.ExperienceCompany {
			item := &models.ExperienceCompany{Name: name}
			item.ID = id
			return item
		})
	registerCatalog(catalogs, adminCatalogs, &h.BaseHandler, "/experience-roles", svc.ExperienceRoles,
		func(id, name string) *models.ExperienceRole {
			item := &models.ExperienceRole{Name: name}
			item.ID = id
			return item
		})
	registerCatalog(catalogs, adminCatalogs, &h.BaseHandler, "/education-degrees", svc.Degrees,
		func(id, name string) *models.EducationDegree {
			item := &models.EducationDegree{Name: name}
			item.ID = id
			return item
		})
	registerCatalog(catalogs, adminCatalogs, &h.BaseHandler, "/education-courses", svc.Courses,
		func(id, name string) *models.EducationCourse {
			item := &models.EducationCourse{Name: name}
			item.ID = id
			return item
		})

	catalogs.GET("/social-networks", h.ListSocialNetworks)
	adminCatalogs.POST("/social-networks", h.CreateSocialNetwork)
	adminCatalogs.DELETE("/social-networks/:id", h.DeleteSocialNetwork)

	catalogs.GET("/education-institutions", h.ListInstitutions)
	adminCatalogs.POST("/education-institutions", h.CreateInstitution)
	adminCatalogs.DELETE("/education-institutions/:id", h.DeleteInstitution)

	catalogs.GET("/countries", h.ListCountries)
	adminCatalogs.POST("/countries", h.CreateCountry)
	adminCatalogs.DELETE("/countries/:id", h.DeleteCountry)

	catalogs.GET("/states", h.ListStates)
	adminCatalogs.POST("/states", h.CreateState)
	adminCatalogs.DELETE("/states/:id", h.DeleteState)

	catalogs.GET("/cities", h.ListCities)
	adminCatalogs.POST("/cities", h.CreateCity)
	adminCatalogs.DELETE("/cities/:id", h.DeleteCity)

	catalogs.GET("/cv-languages", h.ListCVLanguages)
	adminCatalogs.POST("/cv-languages", h.CreateCVLanguage)
}

// registerCatalog wires list/create/update/delete for one name-only
// catalog. The build func constructs the model from path id and payload
// name; the mapping is identical across all seven catalogs.
func registerCatalog[T any](rg, admin *gin.RouterGroup, base *BaseHandler, path string, crud *services.CatalogCRUD[T], build func(id, name string) *T) {
	rg.GET(path, func(c *gin.Context) {
		items, err := crud.List(base.GetDB(c))
		if err != nil {
			base.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	})

	admin.POST(path, func(c *gin.Context) {
		var req dto.CatalogItemRequest
		if !base.BindJSON(c, &req) {
			return
		}
		item := build("", req.Name)
		if err := crud.Create(base.GetDB(c), item); err != nil {
			base.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	})

	admin.PUT(path+"/:id", func(c *gin.Context) {
		var req dto.CatalogItemRequest
		if !base.BindJSON(c, &req) {
			return
		}
		item := build(c.Param("id"), req.Name)
		if err := crud.Update(base.GetDB(c), item); err != nil {
			base.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	admin.DELETE(path+"/:id", func(c *gin.Context) {
		if err := crud.Delete(base.GetDB(c), c.Param("id")); err != nil {
			base.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// Social networks

func (h *CatalogHandler) ListSocialNetworks(c *gin.Context) {
	items, err := h.catalogService.ListSocialNetworks(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateSocialNetwork(c *gin.Context) {
	var req dto.SocialNetworkRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.CreateSocialNetwork(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) DeleteSocialNetwork(c *gin.Context) {
	if err := h.catalogService.DeleteSocialNetwork(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Education institutions

func (h *CatalogHandler) ListInstitutions(c *gin.Context) {
	items, err := h.catalogService.ListInstitutions(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateInstitution(c *gin.Context) {
	var req dto.InstitutionRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.CreateInstitution(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) DeleteInstitution(c *gin.Context) {
	if err := h.catalogService.DeleteInstitution(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Geography

func (h *CatalogHandler) ListCountries(c *gin.Context) {
	items, err := h.catalogService.ListCountries(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateCountry(c *gin.Context) {
	var req dto.CountryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.CreateCountry(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) DeleteCountry(c *gin.Context) {
	if err := h.catalogService.DeleteCountry(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListStates(c *gin.Context) {
	items, err := h.catalogService.ListStates(c.Request.Context(), h.GetDB(c), c.Query("country_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateState(c *gin.Context) {
	var req dto.StateRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.CreateState(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) DeleteState(c *gin.Context) {
	if err := h.catalogService.DeleteState(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	items, err := h.catalogService.ListCities(c.Request.Context(), h.GetDB(c), c.Query("state_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateCity(c *gin.Context) {
	var req dto.CityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.CreateCity(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) DeleteCity(c *gin.Context) {
	if err := h.catalogService.DeleteCity(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Document output languages

func (h *CatalogHandler) ListCVLanguages(c *gin.Context) {
	items, err := h.catalogService.ListCVLanguages(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreateCVLanguage(c *gin.Context) {
	var req dto.CVLanguageRequest
	if !h.BindJSON(c, &req) {
		return
	}
	item, err := h.catalogService.CreateCVLanguage(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}
