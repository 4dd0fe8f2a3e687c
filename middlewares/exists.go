package middlewares

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
)

// The existence gate: fetch the row named by a path or body id before any
// mutation proceeds. The fetched row is stashed in the context under its
// kind key so downstream gates and handlers do not re-fetch it.

func paramUint(c *gin.Context, name string) uint {
	n, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(n)
}

func TruckExists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := paramUint(c, "truck_id")
		var truck entity.Truck
		if err := db.WithContext(c.Request.Context()).First(&truck, id).Error; err != nil {
			abortOnLookupErr(c, err, "truck", c.Param("truck_id"))
			return
		}
		c.Set("truck", truck)
		c.Next()
	}
}

// TruckExistsBody checks the parent truck named in the body, for routes
// that carry no truck id in the path (e.g. POST /items).
func TruckExistsBody(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetUint("bodyTruckID")
		var truck entity.Truck
		if err := db.WithContext(c.Request.Context()).First(&truck, id).Error; err != nil {
			abortOnLookupErr(c, err, "truck", strconv.FormatUint(uint64(id), 10))
			return
		}
		c.Set("truck", truck)
		c.Next()
	}
}

func ItemExists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := paramUint(c, "item_id")
		var item entity.Item
		if err := db.WithContext(c.Request.Context()).First(&item, id).Error; err != nil {
			abortOnLookupErr(c, err, "item", c.Param("item_id"))
			return
		}
		c.Set("item", item)
		c.Next()
	}
}

func PhotoExists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := paramUint(c, "photo_id")
		var photo entity.ItemPhoto
		if err := db.WithContext(c.Request.Context()).First(&photo, id).Error; err != nil {
			abortOnLookupErr(c, err, "photo", c.Param("photo_id"))
			return
		}
		c.Set("photo", photo)
		c.Next()
	}
}

func abortOnLookupErr(c *gin.Context, err error, kind, id string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, fmt.Sprintf("could not find %s with id %s", kind, id))
	} else {
		resp.Internal(c, err)
	}
	c.Abort()
}
