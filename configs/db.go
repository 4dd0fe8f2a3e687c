package configs

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
)

func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		// sqlite DSN should carry _fk=1 so ON DELETE CASCADE is enforced
		dialector = sqlite.Open(cfg.DBSource)
	}
	return gorm.Open(dialector, &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.Truck{},
		&entity.Item{},
		&entity.ItemPhoto{},
		&entity.TruckRating{},
		&entity.ItemRating{},
		&entity.Favorite{},
	)
}
