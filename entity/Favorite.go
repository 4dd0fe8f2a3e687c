package entity

type Favorite struct {
	ID uint `gorm:"primaryKey;column:favorite_id" json:"favorite_id"`

	TruckID uint  `gorm:"not null;index:uniq_user_favorite,unique" json:"truck_id"`
	Truck   Truck `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	UserID uint `gorm:"not null;index:uniq_user_favorite,unique" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Favorite) TableName() string { return "favorites" }
