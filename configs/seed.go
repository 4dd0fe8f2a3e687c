package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

// SeedDemo loads a small demo data set: three users, their trucks, a few
// items with photos, plus ratings and favorites. Safe to run repeatedly.
func SeedDemo(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("skip demo seed: users already present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), cfg.BcryptCost)
	if err != nil {
		return err
	}

	lat := func(v float64) *float64 { return &v }

	users := []entity.User{
		{Username: "roger", Email: "roger@bbq.com", Password: string(hash), UserLat: lat(43.4799), UserLong: lat(-110.7624)},
		{Username: "anna", Email: "anna@burgerz.com", Password: string(hash), UserLat: lat(43.4729), UserLong: lat(-110.7610)},
		{Username: "sam", Email: "sam@hungry.com", Password: string(hash), UserLat: lat(43.4745), UserLong: lat(-110.7815)},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	trucks := []entity.Truck{
		{TruckName: "Salty", TruckDescription: "Best BBQ!", TruckLat: lat(43.4783), TruckLong: lat(-110.7697), OpenTime: "10:30:00", CloseTime: "21:00:00", Cuisine: "BBQ", UserID: users[0].ID},
		{TruckName: "Brisk It", TruckDescription: "Just another BBQ joint!", TruckLat: lat(43.4729), TruckLong: lat(-110.7610), OpenTime: "10:00:00", CloseTime: "20:00:00", Cuisine: "BBQ", UserID: users[0].ID},
		{TruckName: "Burgerz", TruckDescription: "Burgers and more!", TruckLat: lat(43.4752), TruckLong: lat(-110.7669), OpenTime: "11:15:00", CloseTime: "21:15:00", Cuisine: "American", UserID: users[1].ID},
	}
	if err := db.Create(&trucks).Error; err != nil {
		return err
	}

	items := []entity.Item{
		{ItemName: "Brisket Plate", ItemDescription: "Slow smoked brisket", ItemPrice: 1250, TruckID: trucks[0].ID},
		{ItemName: "Pulled Pork Sandwich", ItemDescription: "With slaw", ItemPrice: 950, TruckID: trucks[0].ID},
		{ItemName: "Double Burger", ItemDescription: "Two patties, all the fixings", ItemPrice: 1100, TruckID: trucks[2].ID},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	photos := []entity.ItemPhoto{
		{PhotoURL: "https://images.unsplash.com/photo-1570642916889", ItemID: items[0].ID},
		{PhotoURL: "https://images.unsplash.com/photo-1505826759037", ItemID: items[2].ID},
	}
	if err := db.Create(&photos).Error; err != nil {
		return err
	}

	ratings := []entity.TruckRating{
		{TruckRating: 5, TruckID: trucks[0].ID, UserID: users[2].ID},
		{TruckRating: 4, TruckID: trucks[2].ID, UserID: users[0].ID},
	}
	if err := db.Create(&ratings).Error; err != nil {
		return err
	}

	favorites := []entity.Favorite{
		{TruckID: trucks[0].ID, UserID: users[2].ID},
		{TruckID: trucks[2].ID, UserID: users[2].ID},
	}
	return db.Create(&favorites).Error
}
