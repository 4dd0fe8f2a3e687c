package entity

type ItemRating struct {
	ID         uint `gorm:"primaryKey;column:item_rating_id" json:"item_rating_id"`
	ItemRating int  `gorm:"not null" json:"item_rating"`

	ItemID uint `gorm:"not null;index:uniq_user_item_rating,unique" json:"item_id"`
	Item   Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// rating author (from JWT)
	UserID uint `gorm:"not null;index:uniq_user_item_rating,unique" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ItemRating) TableName() string { return "item_ratings" }
