package repository

import (
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

type ItemRatingRepository struct {
	DB *gorm.DB
}

func NewItemRatingRepository(db *gorm.DB) *ItemRatingRepository {
	return &ItemRatingRepository{DB: db}
}

func (r *ItemRatingRepository) FindByID(id uint) (*entity.ItemRating, error) {
	var rating entity.ItemRating
	if err := r.DB.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ItemRatingRepository) Create(rating *entity.ItemRating) error {
	return r.DB.Create(rating).Error
}

func (r *ItemRatingRepository) Save(rating *entity.ItemRating) error {
	return r.DB.Save(rating).Error
}
