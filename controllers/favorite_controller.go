package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/repository"
)

type FavoriteController struct {
	favorites *repository.FavoriteRepository
}

func NewFavoriteController(favorites *repository.FavoriteRepository) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// POST /trucks/:truck_id/favorites (self only)
func (f *FavoriteController) Create(c *gin.Context) {
	favorite := c.MustGet("favoriteBody").(entity.Favorite)
	favorite.ID = 0

	if err := f.favorites.Create(&favorite); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.Created(c, favorite)
}

// DELETE /trucks/:truck_id/favorites/:favorite_id (self only on the row's user_id)
func (f *FavoriteController) Delete(c *gin.Context) {
	favorite := c.MustGet("favorite").(entity.Favorite)

	if err := f.favorites.Delete(favorite.ID); err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, favorite)
}
