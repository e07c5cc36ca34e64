package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// CatalogRepository serves the shared reference-data entities (Skill,
// Language, Role, SocialNetwork, the experience/education catalogs).
// The five facet catalogs are structurally identical, so the mapping is
// implemented once and parameterized over the model type. Catalog rows
// are never deleted as a side effect of user deletion.
type CatalogRepository[T any] struct{}

func NewCatalogRepository[T any]() *CatalogRepository[T] {
	return &CatalogRepository[T]{}
}

// List returns all entries in alphabetical order.
func (r *CatalogRepository[T]) List(db *gorm.DB) ([]T, error) {
	var items []T
	err := db.Order("name").Find(&items).Error
	return items, err
}

func (r *CatalogRepository[T]) GetByID(db *gorm.DB, id string) (*T, error) {
	var item T
	err := db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository[T]) GetByName(db *gorm.DB, name string) (*T, error) {
	var item T
	err := db.First(&item, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository[T]) Create(db *gorm.DB, item *T) error {
	return translateError(db.Create(item).Error, ErrRecordNotFound)
}

func (r *CatalogRepository[T]) Update(db *gorm.DB, item *T) error {
	result := db.Save(item)
	if result.Error != nil {
		return translateError(result.Error, ErrRecordNotFound)
	}
	return nil
}

func (r *CatalogRepository[T]) Delete(db *gorm.DB, id string) error {
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
