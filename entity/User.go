package entity

import "time"

type User struct {
	ID       uint     `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username string   `gorm:"size:200;uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"size:200;not null" json:"email"`
	Password string   `gorm:"size:320;not null" json:"-"`
	UserLat  *float64 `json:"user_lat"`
	UserLong *float64 `json:"user_long"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations — preload only when needed
	TrucksOwned  []Truck       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Favorites    []Favorite    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TruckRatings []TruckRating `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemRatings  []ItemRating  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
