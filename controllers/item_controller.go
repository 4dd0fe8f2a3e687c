package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/repository"
)

type ItemController struct {
	items *repository.ItemRepository
}

func NewItemController(items *repository.ItemRepository) *ItemController {
	return &ItemController{items: items}
}

// GET /items/:item_id
func (i *ItemController) Detail(c *gin.Context) {
	item := c.MustGet("item").(entity.Item)
	resp.OK(c, item)
}

// POST /items (truck owner only)
func (i *ItemController) Create(c *gin.Context) {
	item := c.MustGet("itemBody").(entity.Item)
	item.ID = 0

	if err := i.items.Create(&item); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /items/:item_id (owner via item -> truck -> user)
func (i *ItemController) Update(c *gin.Context) {
	existing := c.MustGet("item").(entity.Item)
	body := c.MustGet("itemBody").(entity.Item)

	existing.ItemName = body.ItemName
	existing.ItemDescription = body.ItemDescription
	existing.ItemPrice = body.ItemPrice
	// TruckID is never updated; items do not move between trucks

	if err := i.items.Save(&existing); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, existing)
}

// DELETE /items/:item_id (owner via item -> truck -> user)
func (i *ItemController) Delete(c *gin.Context) {
	item := c.MustGet("item").(entity.Item)

	if err := i.items.Delete(item.ID); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, item)
}
