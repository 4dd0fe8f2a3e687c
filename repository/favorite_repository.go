package repository

import (
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) FindByID(id uint) (*entity.Favorite, error) {
	var favorite entity.Favorite
	if err := r.DB.First(&favorite, id).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Create(favorite *entity.Favorite) error {
	return r.DB.Create(favorite).Error
}

func (r *FavoriteRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Favorite{}, id).Error
}
