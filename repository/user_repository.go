package repository

import (
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

// UserRepository is the only piece that talks to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("user_id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) UpdatePassword(userID uint, hash string) error {
	return r.DB.Model(&entity.User{}).Where("user_id = ?", userID).
		Update("password", hash).Error
}

// FavoriteTrucks lists the trucks the user has favorited.
func (r *UserRepository) FavoriteTrucks(userID uint) ([]entity.Truck, error) {
	var trucks []entity.Truck
	err := r.DB.
		Joins("JOIN favorites ON favorites.truck_id = trucks.truck_id").
		Where("favorites.user_id = ?", userID).
		Find(&trucks).Error
	return trucks, err
}

// TrucksOwned lists the trucks the user owns.
func (r *UserRepository) TrucksOwned(userID uint) ([]entity.Truck, error) {
	var trucks []entity.Truck
	err := r.DB.Where("user_id = ?", userID).Find(&trucks).Error
	return trucks, err
}
