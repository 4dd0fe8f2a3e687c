package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
)

// The uniqueness gate for ratings and favorites. POST and mutation share the
// underlying existence lookup but apply opposite polarity: creation must be
// novel for the (user, target) pair, edits and deletes must target a row
// that already exists by its own primary key.

func TruckRatingGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost:
			var existing entity.TruckRating
			err := db.WithContext(c.Request.Context()).
				Where("truck_id = ? AND user_id = ?", c.GetUint("bodyTruckID"), c.GetUint("bodyUserID")).
				First(&existing).Error
			if err == nil {
				resp.Unprocessable(c, "truck rating already exists")
				c.Abort()
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				resp.Internal(c, err)
				c.Abort()
				return
			}
		case http.MethodPut:
			id := c.Param("truck_rating_id")
			var rating entity.TruckRating
			if err := db.WithContext(c.Request.Context()).First(&rating, paramUint(c, "truck_rating_id")).Error; err != nil {
				abortOnLookupErr(c, err, "truck rating", id)
				return
			}
			c.Set("truckRating", rating)
			c.Set("recordUserID", rating.UserID)
		}
		c.Next()
	}
}

func ItemRatingGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost:
			var existing entity.ItemRating
			err := db.WithContext(c.Request.Context()).
				Where("item_id = ? AND user_id = ?", c.GetUint("bodyItemID"), c.GetUint("bodyUserID")).
				First(&existing).Error
			if err == nil {
				resp.Unprocessable(c, "item rating already exists")
				c.Abort()
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				resp.Internal(c, err)
				c.Abort()
				return
			}
		case http.MethodPut:
			id := c.Param("item_rating_id")
			var rating entity.ItemRating
			if err := db.WithContext(c.Request.Context()).First(&rating, paramUint(c, "item_rating_id")).Error; err != nil {
				abortOnLookupErr(c, err, "item rating", id)
				return
			}
			c.Set("itemRating", rating)
			c.Set("recordUserID", rating.UserID)
		}
		c.Next()
	}
}

func FavoriteGate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost:
			var existing entity.Favorite
			err := db.WithContext(c.Request.Context()).
				Where("truck_id = ? AND user_id = ?", c.GetUint("bodyTruckID"), c.GetUint("bodyUserID")).
				First(&existing).Error
			if err == nil {
				resp.Unprocessable(c, "truck favorite already exists")
				c.Abort()
				return
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				resp.Internal(c, err)
				c.Abort()
				return
			}
		case http.MethodDelete:
			id := c.Param("favorite_id")
			var favorite entity.Favorite
			if err := db.WithContext(c.Request.Context()).First(&favorite, paramUint(c, "favorite_id")).Error; err != nil {
				abortOnLookupErr(c, err, "favorite", id)
				return
			}
			c.Set("favorite", favorite)
			// the favorite row itself names the acting user
			c.Set("recordUserID", favorite.UserID)
		}
		c.Next()
	}
}
