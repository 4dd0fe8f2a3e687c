package repository

import (
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

type PhotoRepository struct {
	DB *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{DB: db}
}

func (r *PhotoRepository) FindByID(id uint) (*entity.ItemPhoto, error) {
	var photo entity.ItemPhoto
	if err := r.DB.First(&photo, id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) FindByItem(itemID uint) ([]entity.ItemPhoto, error) {
	var photos []entity.ItemPhoto
	err := r.DB.Where("item_id = ?", itemID).Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) Create(photo *entity.ItemPhoto) error {
	return r.DB.Create(photo).Error
}

func (r *PhotoRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.ItemPhoto{}, id).Error
}
