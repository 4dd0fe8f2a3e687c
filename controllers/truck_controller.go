package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/repository"
)

type TruckController struct {
	trucks *repository.TruckRepository
	items  *repository.ItemRepository
}

func NewTruckController(trucks *repository.TruckRepository, items *repository.ItemRepository) *TruckController {
	return &TruckController{trucks: trucks, items: items}
}

// GET /trucks
func (t *TruckController) List(c *gin.Context) {
	trucks, err := t.trucks.FindAll()
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, trucks)
}

// GET /trucks/:truck_id
func (t *TruckController) Detail(c *gin.Context) {
	truck := c.MustGet("truck").(entity.Truck)
	resp.OK(c, truck)
}

// GET /trucks/:truck_id/items
func (t *TruckController) ListItems(c *gin.Context) {
	truck := c.MustGet("truck").(entity.Truck)
	items, err := t.items.FindByTruck(truck.ID)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /trucks
func (t *TruckController) Create(c *gin.Context) {
	truck := c.MustGet("truckBody").(entity.Truck)
	truck.ID = 0

	if err := t.trucks.Create(&truck); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Created(c, truck)
}

// PUT /trucks/:truck_id (owner only)
func (t *TruckController) Update(c *gin.Context) {
	existing := c.MustGet("truck").(entity.Truck)
	body := c.MustGet("truckBody").(entity.Truck)

	existing.TruckName = body.TruckName
	existing.TruckDescription = body.TruckDescription
	existing.TruckLat = body.TruckLat
	existing.TruckLong = body.TruckLong
	existing.OpenTime = body.OpenTime
	existing.CloseTime = body.CloseTime
	existing.ImageURL = body.ImageURL
	existing.Cuisine = body.Cuisine
	// UserID is never updated; trucks do not change owners

	if err := t.trucks.Save(&existing); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, existing)
}

// DELETE /trucks/:truck_id (owner only, cascades to children)
func (t *TruckController) Delete(c *gin.Context) {
	truck := c.MustGet("truck").(entity.Truck)

	if err := t.trucks.Delete(truck.ID); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, truck)
}
