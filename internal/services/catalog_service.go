package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cvgen_backend/internal/models"
	"cvgen_backend/internal/repositories"
	"cvgen_backend/internal/services/dto"
	"cvgen_backend/pkg/apperrors"
)

// CatalogCRUD wraps a catalog repository with API error mapping. The
// name-only catalogs all share this one implementation.
type CatalogCRUD[T any] struct {
	repo   *repositories.CatalogRepository[T]
	domain string
}

func NewCatalogCRUD[T any](domain string) *CatalogCRUD[T] {
	return &CatalogCRUD[T]{
		repo:   repositories.NewCatalogRepository[T](),
		domain: domain,
	}
}

func (c *CatalogCRUD[T]) List(db *gorm.DB) ([]T, error) {
	items, err := c.repo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (c *CatalogCRUD[T]) Get(db *gorm.DB, id string) (*T, error) {
	item, err := c.repo.GetByID(db, id)
	if err != nil {
		return nil, mapFacetError(err, c.domain, "")
	}
	return item, nil
}

func (c *CatalogCRUD[T]) Create(db *gorm.DB, item *T) error {
	return mapFacetError(c.repo.Create(db, item), c.domain, "Entry with this name already exists")
}

func (c *CatalogCRUD[T]) Update(db *gorm.DB, item *T) error {
	return mapFacetError(c.repo.Update(db, item), c.domain, "Entry with this name already exists")
}

func (c *CatalogCRUD[T]) Delete(db *gorm.DB, id string) error {
	return mapFacetError(c.repo.Delete(db, id), c.domain, "")
}

// CatalogService groups the shared reference data: the name-only
// catalogs, social networks, education institutions, the geography
// hierarchy and the document output languages. All writes are
// admin-gated at the HTTP layer.
type CatalogService struct {
	Skills              *CatalogCRUD[models.Skill]
	Languages           *CatalogCRUD[models.Language]
	Roles               *CatalogCRUD[models.Role]
	ExperienceCompanies *CatalogCRUD[models.ExperienceCompany]
	ExperienceRoles     *CatalogCRUD[models.ExperienceRole]
	Degrees             *CatalogCRUD[models.EducationDegree]
	Courses             *CatalogCRUD[models.EducationCourse]

	socialNetworks *repositories.CatalogRepository[models.SocialNetwork]
	institutions   *repositories.CatalogRepository[models.EducationInstitution]
	geoRepo        repositories.GeoRepository
	cvRepo         repositories.CvRepository
}

func NewCatalogService(geoRepo repositories.GeoRepository, cvRepo repositories.CvRepository) *CatalogService {
	return &CatalogService{
		Skills:              NewCatalogCRUD[models.Skill]("catalog.skill"),
		Languages:           NewCatalogCRUD[models.Language]("catalog.language"),
		Roles:               NewCatalogCRUD[models.Role]("catalog.role"),
		ExperienceCompanies: NewCatalogCRUD[models.ExperienceCompany]("catalog.experience_company"),
		ExperienceRoles:     NewCatalogCRUD[models.ExperienceRole]("catalog.experience_role"),
		Degrees:             NewCatalogCRUD[models.EducationDegree]("catalog.degree"),
		Courses:             NewCatalogCRUD[models.EducationCourse]("catalog.course"),

		socialNetworks: repositories.NewCatalogRepository[models.SocialNetwork](),
		institutions:   repositories.NewCatalogRepository[models.EducationInstitution](),
		geoRepo:        geoRepo,
		cvRepo:         cvRepo,
	}
}

// Social networks

func (s *CatalogService) ListSocialNetworks(ctx context.Context, db *gorm.DB) ([]models.SocialNetwork, error) {
	items, err := s.socialNetworks.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *CatalogService) CreateSocialNetwork(ctx context.Context, db *gorm.DB, req *dto.SocialNetworkRequest) (*models.SocialNetwork, error) {
	sn := &models.SocialNetwork{
		Name:    req.Name,
		BaseURL: req.BaseURL,
		IconURL: req.IconURL,
		Suffix:  req.Suffix,
	}
	if err := s.socialNetworks.Create(db, sn); err != nil {
		return nil, mapFacetError(err, "catalog.social_network", "Social network already registered")
	}
	return sn, nil
}

func (s *CatalogService) DeleteSocialNetwork(ctx context.Context, db *gorm.DB, id string) error {
	return mapFacetError(s.socialNetworks.Delete(db, id), "catalog.social_network", "")
}

// Education institutions

func (s *CatalogService) ListInstitutions(ctx context.Context, db *gorm.DB) ([]models.EducationInstitution, error) {
	items, err := s.institutions.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *CatalogService) CreateInstitution(ctx context.Context, db *gorm.DB, req *dto.InstitutionRequest) (*models.EducationInstitution, error) {
	inst := &models.EducationInstitution{
		Name:    req.Name,
		Acronym: req.Acronym,
		CityID:  req.CityID,
	}
	if err := s.institutions.Create(db, inst); err != nil {
		return nil, mapFacetError(err, "catalog.institution", "Institution already registered in this city")
	}
	return inst, nil
}

func (s *CatalogService) DeleteInstitution(ctx context.Context, db *gorm.DB, id string) error {
	return mapFacetError(s.institutions.Delete(db, id), "catalog.institution", "")
}

// Geography

func (s *CatalogService) ListCountries(ctx context.Context, db *gorm.DB) ([]models.Country, error) {
	items, err := s.geoRepo.ListCountries(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *CatalogService) CreateCountry(ctx context.Context, db *gorm.DB, req *dto.CountryRequest) (*models.Country, error) {
	country := &models.Country{Name: req.Name}
	if err := s.geoRepo.CreateCountry(db, country); err != nil {
		return nil, mapFacetError(err, "catalog.country", "Country already exists")
	}
	return country, nil
}

func (s *CatalogService) DeleteCountry(ctx context.Context, db *gorm.DB, id string) error {
	return mapFacetError(s.geoRepo.DeleteCountry(db, id), "catalog.country", "")
}

func (s *CatalogService) ListStates(ctx context.Context, db *gorm.DB, countryID string) ([]models.State, error) {
	items, err := s.geoRepo.ListStates(db, countryID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *CatalogService) CreateState(ctx context.Context, db *gorm.DB, req *dto.StateRequest) (*models.State, error) {
	state := &models.State{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		CountryID:    req.CountryID,
	}
	if err := s.geoRepo.CreateState(db, state); err != nil {
		return nil, mapFacetError(err, "catalog.state", "State already exists in this country")
	}
	return state, nil
}

func (s *CatalogService) DeleteState(ctx context.Context, db *gorm.DB, id string) error {
	return mapFacetError(s.geoRepo.DeleteState(db, id), "catalog.state", "")
}

func (s *CatalogService) ListCities(ctx context.Context, db *gorm.DB, stateID string) ([]models.City, error) {
	items, err := s.geoRepo.ListCities(db, stateID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *CatalogService) CreateCity(ctx context.Context, db *gorm.DB, req *dto.CityRequest) (*models.City, error) {
	city := &models.City{Name: req.Name, StateID: req.StateID}
	if err := s.geoRepo.CreateCity(db, city); err != nil {
		return nil, mapFacetError(err, "catalog.city", "City already exists in this state")
	}
	return city, nil
}

func (s *CatalogService) DeleteCity(ctx context.Context, db *gorm.DB, id string) error {
	return mapFacetError(s.geoRepo.DeleteCity(db, id), "catalog.city", "")
}

// Document output languages

func (s *CatalogService) ListCVLanguages(ctx context.Context, db *gorm.DB) ([]models.CVLanguage, error) {
	items, err := s.cvRepo.ListCVLanguages(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return items, nil
}

func (s *CatalogService) CreateCVLanguage(ctx context.Context, db *gorm.DB, req *dto.CVLanguageRequest) (*models.CVLanguage, error) {
	lang := &models.CVLanguage{Language: req.Language, Name: req.Name}
	if err := s.cvRepo.CreateCVLanguage(db, lang); err != nil {
		if errors.Is(err, repositories.ErrDuplicateRecord) {
			return nil, apperrors.ConflictError("catalog.cv_language", "Output language already registered")
		}
		return nil, apperrors.InternalError(err)
	}
	return lang, nil
}
