package handlers

import "cvgen_backend/internal/services"

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Profile *ProfileHandler
	Catalog *CatalogHandler
	CV      *CVHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		Auth:    NewAuthHandler(sc.Auth),
		User:    NewUserHandler(sc.User),
		Profile: NewProfileHandler(sc.Profile),
		Catalog: NewCatalogHandler(sc.Catalog),
		CV:      NewCVHandler(sc.CV),
	}
}
