package entity

import "time"

type Truck struct {
	ID               uint     `gorm:"primaryKey;column:truck_id" json:"truck_id"`
	TruckName        string   `gorm:"size:200;not null" json:"truck_name"`
	TruckDescription string   `gorm:"size:200;not null" json:"truck_description"`
	TruckLat         *float64 `json:"truck_lat"`
	TruckLong        *float64 `json:"truck_long"`
	OpenTime         string   `gorm:"not null" json:"open_time"`
	CloseTime        string   `gorm:"not null" json:"close_time"`
	ImageURL         string   `json:"image_url"`
	Cuisine          string   `gorm:"size:200;not null" json:"cuisine"`

	UserID uint `gorm:"not null;index" json:"user_id"` // owner (users.user_id)
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Items        []Item        `gorm:"foreignKey:TruckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TruckRatings []TruckRating `gorm:"foreignKey:TruckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Favorites    []Favorite    `gorm:"foreignKey:TruckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
