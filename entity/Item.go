package entity

import "time"

type Item struct {
	ID              uint   `gorm:"primaryKey;column:item_id" json:"item_id"`
	ItemName        string `gorm:"size:200;not null" json:"item_name"`
	ItemDescription string `gorm:"size:200" json:"item_description"`
	ItemPrice       Price  `gorm:"not null" json:"item_price"`

	TruckID uint  `gorm:"not null;index" json:"truck_id"`
	Truck   Truck `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Photos      []ItemPhoto  `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemRatings []ItemRating `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
