package repositories

import (
	"errors"

	"gorm.io/gorm"

	"cvgen_backend/internal/models"
)

// GeoRepository serves the Country -> State -> City hierarchy.
type GeoRepository interface {
	ListCountries(db *gorm.DB) ([]models.Country, error)
	CreateCountry(db *gorm.DB, country *models.Country) error
	DeleteCountry(db *gorm.DB, id string) error

	ListStates(db *gorm.DB, countryID string) ([]models.State, error)
	CreateState(db *gorm.DB, state *models.State) error
	DeleteState(db *gorm.DB, id string) error

	ListCities(db *gorm.DB, stateID string) ([]models.City, error)
	GetCity(db *gorm.DB, id string) (*models.City, error)
	CreateCity(db *gorm.DB, city *models.City) error
	DeleteCity(db *gorm.DB, id string) error
}

type GeoRepositoryImpl struct{}

func NewGeoRepository() GeoRepository {
	return &GeoRepositoryImpl{}
}

func (r *GeoRepositoryImpl) ListCountries(db *gorm.DB) ([]models.Country, error) {
	var countries []models.Country
	err := db.Order("name").Find(&countries).Error
	return countries, err
}

func (r *GeoRepositoryImpl) CreateCountry(db *gorm.DB, country *models.Country) error {
	return translateError(db.Create(country).Error, ErrRecordNotFound)
}

func (r *GeoRepositoryImpl) DeleteCountry(db *gorm.DB, id string) error {
	return deleteByID[models.Country](db, id)
}

func (r *GeoRepositoryImpl) ListStates(db *gorm.DB, countryID string) ([]models.State, error) {
	var states []models.State
	query := db.Order("name")
	if countryID != "" {
		query = query.Where("country_id = ?", countryID)
	}
	err := query.Find(&states).Error
	return states, err
}

func (r *GeoRepositoryImpl) CreateState(db *gorm.DB, state *models.State) error {
	return translateError(db.Create(state).Error, ErrRecordNotFound)
}

func (r *GeoRepositoryImpl) DeleteState(db *gorm.DB, id string) error {
	return deleteByID[models.State](db, id)
}

func (r *GeoRepositoryImpl) ListCities(db *gorm.DB, stateID string) ([]models.City, error) {
	var cities []models.City
	query := db.Order("name")
	if stateID != "" {
		query = query.Where("state_id = ?", stateID)
	}
	err := query.Find(&cities).Error
	return cities, err
}

func (r *GeoRepositoryImpl) GetCity(db *gorm.DB, id string) (*models.City, error) {
	var city models.City
	err := db.Preload("State.Country").First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *GeoRepositoryImpl) CreateCity(db *gorm.DB, city *models.City) error {
	return translateError(db.Create(city).Error, ErrRecordNotFound)
}

func (r *GeoRepositoryImpl) DeleteCity(db *gorm.DB, id string) error {
	return deleteByID[models.City](db, id)
}

func deleteByID[T any](db *gorm.DB, id string) error {
	var item T
	result := db.Delete(&item, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
