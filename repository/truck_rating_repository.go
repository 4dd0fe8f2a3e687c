package repository

import (
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

type TruckRatingRepository struct {
	DB *gorm.DB
}

func NewTruckRatingRepository(db *gorm.DB) *TruckRatingRepository {
	return &TruckRatingRepository{DB: db}
}

func (r *TruckRatingRepository) FindByID(id uint) (*entity.TruckRating, error) {
	var rating entity.TruckRating
	if err := r.DB.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *TruckRatingRepository) Create(rating *entity.TruckRating) error {
	return r.DB.Create(rating).Error
}

func (r *TruckRatingRepository) Save(rating *entity.TruckRating) error {
	return r.DB.Save(rating).Error
}
