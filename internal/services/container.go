package services

import (
	"time"

	"cvgen_backend/internal/events"
	"cvgen_backend/internal/renderer"
	"cvgen_backend/internal/repositories"
)

// ServiceContainer wires the repositories into the service layer.
type ServiceContainer struct {
	Auth    *AuthService
	User    *UserService
	Profile *ProfileService
	Catalog *CatalogService
	CV      *CVService
}

type ContainerDeps struct {
	JWTTTL     time.Duration
	RefreshTTL time.Duration
	Template   *renderer.CVTemplate
	PDF        renderer.PDFRenderer
	Dispatcher *events.Dispatcher
}

func NewServiceContainer(deps ContainerDeps) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	geoRepo := repositories.NewGeoRepository()
	cvRepo := repositories.NewCvRepository()

	return &ServiceContainer{
		Auth:    NewAuthService(userRepo, deps.JWTTTL, deps.RefreshTTL),
		User:    NewUserService(userRepo),
		Profile: NewProfileService(profileRepo),
		Catalog: NewCatalogService(geoRepo, cvRepo),
		CV:      NewCVService(userRepo, profileRepo, cvRepo, deps.Template, deps.PDF, deps.Dispatcher),
	}
}
