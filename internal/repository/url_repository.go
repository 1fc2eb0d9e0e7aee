package repository

import (
	"errors"

	"github.com/srhafid/BookApi/internal/models"

	"gorm.io/gorm"
)

type URLRepository struct {
	db *gorm.DB
}

func NewURLRepository(db *gorm.DB) *URLRepository {
	return &URLRepository{db: db}
}

func (r *URLRepository) Create(url *models.URL) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(url).Error
	})
}

func (r *URLRepository) GetByID(id uint) (*models.URL, error) {
	var url models.URL
	if err := r.db.First(&url, id).Error; err != nil {
		return nil, translate(err)
	}
	return &url, nil
}

func (r *URLRepository) ListByUser(userID uint) ([]models.URL, error) {
	var urls []models.URL
	if err := r.db.Where("user_id = ?", userID).Find(&urls).Error; err != nil {
		return nil, err
	}
	return urls, nil
}

func (r *URLRepository) Update(id uint, fields map[string]interface{}) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var url models.URL
		if err := tx.First(&url, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&url).Updates(fields).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *URLRepository) Delete(id uint) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var url models.URL
		if err := tx.First(&url, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return tx.Delete(&url).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
