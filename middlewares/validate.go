package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
)

// The validation gate: pure presence checks on the request payload, run
// before any storage round trip. Bodies are bound with ShouldBindBodyWith so
// later gates and handlers can rebind the cached bytes.

// Credentials is the register/login payload.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserEdits is the profile-edit payload; at least one field must be set.
type UserEdits struct {
	Email    *string  `json:"email"`
	UserLat  *float64 `json:"user_lat"`
	UserLong *float64 `json:"user_long"`
}

// PasswordChange carries the old password for re-verification.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func ValidRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds Credentials
		if err := c.ShouldBindBodyWith(&creds, binding.JSON); err != nil ||
			creds.Username == "" || creds.Email == "" || creds.Password == "" {
			resp.Unprocessable(c, "username, email and password required")
			c.Abort()
			return
		}
		c.Set("credentials", creds)
		c.Next()
	}
}

func ValidLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds Credentials
		if err := c.ShouldBindBodyWith(&creds, binding.JSON); err != nil ||
			creds.Username == "" || creds.Password == "" {
			resp.Unprocessable(c, "username and password required")
			c.Abort()
			return
		}
		c.Set("credentials", creds)
		c.Next()
	}
}

func ValidUserEdits() gin.HandlerFunc {
	return func(c *gin.Context) {
		var edits UserEdits
		if err := c.ShouldBindBodyWith(&edits, binding.JSON); err != nil ||
			(edits.Email == nil && edits.UserLat == nil && edits.UserLong == nil) {
			resp.Unprocessable(c, "user edits require a change to email, user_lat and/or user_long")
			c.Abort()
			return
		}
		c.Set("userEdits", edits)
		c.Next()
	}
}

func ValidPasswordChange() gin.HandlerFunc {
	return func(c *gin.Context) {
		var change PasswordChange
		if err := c.ShouldBindBodyWith(&change, binding.JSON); err != nil ||
			change.OldPassword == "" || change.NewPassword == "" {
			resp.Unprocessable(c, "old_password and new_password required")
			c.Abort()
			return
		}
		c.Set("passwordChange", change)
		c.Next()
	}
}

func ValidTruck() gin.HandlerFunc {
	return func(c *gin.Context) {
		var truck entity.Truck
		if err := c.ShouldBindBodyWith(&truck, binding.JSON); err != nil ||
			truck.TruckName == "" || truck.TruckDescription == "" ||
			truck.OpenTime == "" || truck.CloseTime == "" ||
			truck.Cuisine == "" || truck.UserID == 0 {
			resp.Unprocessable(c, "truck creation failed due to invalid truck object")
			c.Abort()
			return
		}
		c.Set("truckBody", truck)
		c.Set("bodyUserID", truck.UserID)
		c.Next()
	}
}

func ValidItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item entity.Item
		if err := c.ShouldBindBodyWith(&item, binding.JSON); err != nil ||
			item.ItemName == "" || item.ItemDescription == "" ||
			item.ItemPrice <= 0 || item.TruckID == 0 {
			resp.Unprocessable(c, "item creation failed due to invalid item object")
			c.Abort()
			return
		}
		c.Set("itemBody", item)
		c.Set("bodyTruckID", item.TruckID)
		c.Next()
	}
}

func ValidPhoto() gin.HandlerFunc {
	return func(c *gin.Context) {
		var photo entity.ItemPhoto
		if err := c.ShouldBindBodyWith(&photo, binding.JSON); err != nil ||
			photo.PhotoURL == "" || photo.ItemID == 0 {
			resp.Unprocessable(c, "photo upload failed due to invalid photo object")
			c.Abort()
			return
		}
		c.Set("photoBody", photo)
		c.Set("bodyItemID", photo.ItemID)
		c.Next()
	}
}

func ValidTruckRating() gin.HandlerFunc {
	return func(c *gin.Context) {
		var rating entity.TruckRating
		if err := c.ShouldBindBodyWith(&rating, binding.JSON); err != nil ||
			rating.UserID == 0 || rating.TruckID == 0 || rating.TruckRating == 0 {
			resp.Unprocessable(c, "truck rating creation failed due to invalid truck rating object")
			c.Abort()
			return
		}
		c.Set("truckRatingBody", rating)
		c.Set("bodyUserID", rating.UserID)
		c.Set("bodyTruckID", rating.TruckID)
		c.Next()
	}
}

func ValidItemRating() gin.HandlerFunc {
	return func(c *gin.Context) {
		var rating entity.ItemRating
		if err := c.ShouldBindBodyWith(&rating, binding.JSON); err != nil ||
			rating.UserID == 0 || rating.ItemID == 0 || rating.ItemRating == 0 {
			resp.Unprocessable(c, "item rating creation failed due to invalid item rating object")
			c.Abort()
			return
		}
		c.Set("itemRatingBody", rating)
		c.Set("bodyUserID", rating.UserID)
		c.Set("bodyItemID", rating.ItemID)
		c.Next()
	}
}

func ValidFavorite() gin.HandlerFunc {
	return func(c *gin.Context) {
		var favorite entity.Favorite
		if err := c.ShouldBindBodyWith(&favorite, binding.JSON); err != nil ||
			favorite.UserID == 0 || favorite.TruckID == 0 {
			resp.Unprocessable(c, "truck not added to favorites due to missing property")
			c.Abort()
			return
		}
		c.Set("favoriteBody", favorite)
		c.Set("bodyUserID", favorite.UserID)
		c.Set("bodyTruckID", favorite.TruckID)
		c.Next()
	}
}

// TruckIdsMatch requires the truck id in the body to equal the :truck_id
// path param, so the uniqueness query cannot be pointed at a different truck.
func TruckIdsMatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		if paramUint(c, "truck_id") != c.GetUint("bodyTruckID") {
			resp.Unprocessable(c, "truck id in body must match params in path")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ItemIdsMatch is the item-scoped twin of TruckIdsMatch.
func ItemIdsMatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		if paramUint(c, "item_id") != c.GetUint("bodyItemID") {
			resp.Unprocessable(c, "item id in body must match params in path")
			c.Abort()
			return
		}
		c.Next()
	}
}
