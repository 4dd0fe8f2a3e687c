package entity

type TruckRating struct {
	ID          uint `gorm:"primaryKey;column:truck_rating_id" json:"truck_rating_id"`
	TruckRating int  `gorm:"not null" json:"truck_rating"`

	TruckID uint  `gorm:"not null;index:uniq_user_truck_rating,unique" json:"truck_id"`
	Truck   Truck `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// rating author (from JWT)
	UserID uint `gorm:"not null;index:uniq_user_truck_rating,unique" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (TruckRating) TableName() string { return "truck_ratings" }
