package repository

import (
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindByTruck(truckID uint) ([]entity.Item, error) {
	var items []entity.Item
	err := r.DB.Where("truck_id = ?", truckID).Find(&items).Error
	return items, err
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) Save(item *entity.Item) error {
	return r.DB.Save(item).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Item{}, id).Error
}
