package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/repository"
)

type RatingController struct {
	truckRatings *repository.TruckRatingRepository
	itemRatings  *repository.ItemRatingRepository
}

func NewRatingController(truckRatings *repository.TruckRatingRepository, itemRatings *repository.ItemRatingRepository) *RatingController {
	return &RatingController{truckRatings: truckRatings, itemRatings: itemRatings}
}

// POST /trucks/:truck_id/truck-ratings (self only)
func (r *RatingController) CreateTruckRating(c *gin.Context) {
	rating := c.MustGet("truckRatingBody").(entity.TruckRating)
	rating.ID = 0

	if err := r.truckRatings.Create(&rating); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Created(c, rating)
}

// PUT /trucks/:truck_id/truck-ratings/:truck_rating_id (self only)
func (r *RatingController) UpdateTruckRating(c *gin.Context) {
	existing := c.MustGet("truckRating").(entity.TruckRating)
	body := c.MustGet("truckRatingBody").(entity.TruckRating)

	existing.TruckRating = body.TruckRating

	if err := r.truckRatings.Save(&existing); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, existing)
}

// POST /items/:item_id/item-ratings (self only)
func (r *RatingController) CreateItemRating(c *gin.Context) {
	rating := c.MustGet("itemRatingBody").(entity.ItemRating)
	rating.ID = 0

	if err := r.itemRatings.Create(&rating); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Created(c, rating)
}

// PUT /items/:item_id/item-ratings/:item_rating_id (self only)
func (r *RatingController) UpdateItemRating(c *gin.Context) {
	existing := c.MustGet("itemRating").(entity.ItemRating)
	body := c.MustGet("itemRatingBody").(entity.ItemRating)

	existing.ItemRating = body.ItemRating

	if err := r.itemRatings.Save(&existing); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, existing)
}
