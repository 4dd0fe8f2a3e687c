package entity

type ItemPhoto struct {
	ID       uint   `gorm:"primaryKey;column:photo_id" json:"photo_id"`
	PhotoURL string `gorm:"not null" json:"photo_url"`

	ItemID uint `gorm:"not null;index" json:"item_id"`
	Item   Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ItemPhoto) TableName() string { return "item_photos" }
