package repository

import (
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

type TruckRepository struct {
	DB *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{DB: db}
}

// FindAll returns at most 20 trucks.
func (r *TruckRepository) FindAll() ([]entity.Truck, error) {
	var trucks []entity.Truck
	err := r.DB.Limit(20).Find(&trucks).Error
	return trucks, err
}

func (r *TruckRepository) FindByID(id uint) (*entity.Truck, error) {
	var truck entity.Truck
	if err := r.DB.First(&truck, id).Error; err != nil {
		return nil, err
	}
	return &truck, nil
}

func (r *TruckRepository) Create(truck *entity.Truck) error {
	return r.DB.Create(truck).Error
}

func (r *TruckRepository) Save(truck *entity.Truck) error {
	return r.DB.Save(truck).Error
}

// Delete removes the truck; the schema cascades to items, photos, ratings
// and favorites.
func (r *TruckRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Truck{}, id).Error
}
