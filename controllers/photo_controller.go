package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/repository"
)

type PhotoController struct {
	photos *repository.PhotoRepository
}

func NewPhotoController(photos *repository.PhotoRepository) *PhotoController {
	return &PhotoController{photos: photos}
}

// GET /items/:item_id/photos
func (p *PhotoController) List(c *gin.Context) {
	item := c.MustGet("item").(entity.Item)
	photos, err := p.photos.FindByItem(item.ID)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, photos)
}

// POST /items/:item_id/photos (owner via item -> truck -> user)
func (p *PhotoController) Create(c *gin.Context) {
	photo := c.MustGet("photoBody").(entity.ItemPhoto)
	photo.ID = 0

	if err := p.photos.Create(&photo); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Created(c, photo)
}

// DELETE /items/:item_id/photos/:photo_id (owner via photo -> item -> truck -> user)
func (p *PhotoController) Delete(c *gin.Context) {
	photo := c.MustGet("photo").(entity.ItemPhoto)

	if err := p.photos.Delete(photo.ID); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, photo)
}
