package repositories

import (
	"errors"

	"gorm.io/gorm"

	"cvgen_backend/internal/models"
)

// CvRepository serves the generation side: output languages, the lazily
// created Company/Brief pair, and the append-only Cv provenance log.
type CvRepository interface {
	ListCVLanguages(db *gorm.DB) ([]models.CVLanguage, error)
	GetCVLanguage(db *gorm.DB, id string) (*models.CVLanguage, error)
	GetCVLanguageByCode(db *gorm.DB, code string) (*models.CVLanguage, error)
	CreateCVLanguage(db *gorm.DB, lang *models.CVLanguage) error

	GetSkillsByIDs(db *gorm.DB, ids []string) ([]models.Skill, error)

	GetOrCreateCompany(db *gorm.DB, name, brief string) (*models.Company, error)
	GetOrCreateBrief(db *gorm.DB, userRoleID, companyID, brief string) (*models.Brief, error)

	CreateCv(db *gorm.DB, cv *models.Cv) error
	ListCvsByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Cv, error)
	CountCvsByUser(db *gorm.DB, userID string) (int64, error)
	ListAllCvs(db *gorm.DB, limit, offset int) ([]models.Cv, error)
}

type CvRepositoryImpl struct{}

func NewCvRepository() CvRepository {
	return &CvRepositoryImpl{}
}

func (r *CvRepositoryImpl) ListCVLanguages(db *gorm.DB) ([]models.CVLanguage, error) {
	var langs []models.CVLanguage
	err := db.Order("language").Find(&langs).Error
	return langs, err
}

func (r *CvRepositoryImpl) GetCVLanguage(db *gorm.DB, id string) (*models.CVLanguage, error) {
	var lang models.CVLanguage
	err := db.First(&lang, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &lang, nil
}

func (r *CvRepositoryImpl) GetCVLanguageByCode(db *gorm.DB, code string) (*models.CVLanguage, error) {
	var lang models.CVLanguage
	err := db.First(&lang, "language = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &lang, nil
}

func (r *CvRepositoryImpl) CreateCVLanguage(db *gorm.DB, lang *models.CVLanguage) error {
	return translateError(db.Create(lang).Error, ErrRecordNotFound)
}

// GetSkillsByIDs loads catalog skills in alphabetical order.
func (r *CvRepositoryImpl) GetSkillsByIDs(db *gorm.DB, ids []string) ([]models.Skill, error) {
	var skills []models.Skill
	err := db.Where("id IN ?", ids).Order("name").Find(&skills).Error
	return skills, err
}

// GetOrCreateCompany resolves the Company row for a name, creating it on
// first use. A concurrent generation may win the insert race; in that
// case the uniqueness violation is recovered by reading the winner's
// row, so two concurrent calls never produce duplicates.
func (r *CvRepositoryImpl) GetOrCreateCompany(db *gorm.DB, name, brief string) (*models.Company, error) {
	var company models.Company
	err := db.First(&company, "name = ?", name).Error
	if err == nil {
		return &company, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company = models.Company{Name: name, Brief: brief}
	if err := db.Create(&company).Error; err != nil {
		if IsDuplicate(err) {
			var existing models.Company
			if err := db.First(&existing, "name = ?", name).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &company, nil
}

// GetOrCreateBrief behaves like GetOrCreateCompany, keyed by
// (user role, company).
func (r *CvRepositoryImpl) GetOrCreateBrief(db *gorm.DB, userRoleID, companyID, brief string) (*models.Brief, error) {
	var b models.Brief
	err := db.First(&b, "user_role_id = ? AND company_id = ?", userRoleID, companyID).Error
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	b = models.Brief{UserRoleID: userRoleID, CompanyID: companyID, Brief: brief}
	if err := db.Create(&b).Error; err != nil {
		if IsDuplicate(err) {
			var existing models.Brief
			if err := db.First(&existing, "user_role_id = ? AND company_id = ?", userRoleID, companyID).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *CvRepositoryImpl) CreateCv(db *gorm.DB, cv *models.Cv) error {
	return translateError(db.Create(cv).Error, ErrRecordNotFound)
}

func (r *CvRepositoryImpl) ListCvsByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Cv, error) {
	var cvs []models.Cv
	err := db.Preload("CVLanguage").Preload("Role").
		Preload("Brief.Company").Preload("Skills").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&cvs).Error
	return cvs, err
}

func (r *CvRepositoryImpl) CountCvsByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Cv{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *CvRepositoryImpl) ListAllCvs(db *gorm.DB, limit, offset int) ([]models.Cv, error) {
	var cvs []models.Cv
	err := db.Preload("CVLanguage").Preload("Role").
		Preload("Brief.Company").Preload("Skills").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&cvs).Error
	return cvs, err
}
