package repository

import (
	"errors"

	"github.com/srhafid/BookApi/internal/models"

	"gorm.io/gorm"
)

// UserRepository issues user CRUD against the relational store. Each
// mutation runs in its own transaction and rolls back on failure.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update applies only the supplied columns. Returns false when the id
// does not exist; an empty field set is a no-op success.
func (r *UserRepository) Update(id uint, fields map[string]interface{}) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&user).Updates(fields).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// Delete removes the user and their urls in one transaction. Returns
// false when the id does not exist.
func (r *UserRepository) Delete(id uint) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		if err := tx.Where("user_id = ?", id).Delete(&models.URL{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
