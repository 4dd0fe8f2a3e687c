package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/configs"
	"github.com/dgamboa/foodtrucks-backend/controllers"
	"github.com/dgamboa/foodtrucks-backend/middlewares"
	"github.com/dgamboa/foodtrucks-backend/repository"
	"github.com/dgamboa/foodtrucks-backend/services"
)

// RegisterRoutes wires every route with its gate chain. Gates always run in
// the same order: token check, payload validation, ids-match, existence,
// uniqueness/ownership, then the handler.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"message": "API is up"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	truckRepo := repository.NewTruckRepository(db)
	itemRepo := repository.NewItemRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	truckRatingRepo := repository.NewTruckRatingRepository(db)
	itemRatingRepo := repository.NewItemRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg)
	owners := services.NewOwnershipService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userRepo, authSvc)
	truckCtrl := controllers.NewTruckController(truckRepo, itemRepo)
	itemCtrl := controllers.NewItemController(itemRepo)
	photoCtrl := controllers.NewPhotoController(photoRepo)
	ratingCtrl := controllers.NewRatingController(truckRatingRepo, itemRatingRepo)
	favoriteCtrl := controllers.NewFavoriteController(favoriteRepo)

	restricted := middlewares.Restricted(cfg)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", middlewares.ValidRegister(), authCtrl.Register)
		a.POST("/login", middlewares.ValidLogin(), authCtrl.Login)
	}

	// Users (self only)
	u := r.Group("/users", restricted)
	{
		u.GET("/:user_id", middlewares.RestrictedParamID("user_id"), userCtrl.Profile)
		u.PUT("/:user_id", middlewares.ValidUserEdits(), middlewares.RestrictedParamID("user_id"), userCtrl.Update)
		u.PUT("/:user_id/password", middlewares.ValidPasswordChange(), middlewares.RestrictedParamID("user_id"), userCtrl.ChangePassword)
	}

	// Trucks (public reads)
	r.GET("/trucks", truckCtrl.List)
	r.GET("/trucks/:truck_id", middlewares.TruckExists(db), truckCtrl.Detail)
	r.GET("/trucks/:truck_id/items", middlewares.TruckExists(db), truckCtrl.ListItems)

	// Trucks (owner-only mutations) and their self-scoped children
	t := r.Group("/trucks", restricted)
	{
		t.POST("", middlewares.ValidTruck(), middlewares.RequireSelfBody(), truckCtrl.Create)
		t.PUT("/:truck_id",
			middlewares.ValidTruck(),
			middlewares.TruckExists(db),
			middlewares.RequireOwner(owners, services.KindTruck, "truck_id"),
			truckCtrl.Update)
		t.DELETE("/:truck_id",
			middlewares.TruckExists(db),
			middlewares.RequireOwner(owners, services.KindTruck, "truck_id"),
			truckCtrl.Delete)

		t.POST("/:truck_id/truck-ratings",
			middlewares.ValidTruckRating(),
			middlewares.TruckIdsMatch(),
			middlewares.TruckExists(db),
			middlewares.TruckRatingGate(db),
			middlewares.RequireSelfBody(),
			ratingCtrl.CreateTruckRating)
		t.PUT("/:truck_id/truck-ratings/:truck_rating_id",
			middlewares.ValidTruckRating(),
			middlewares.TruckIdsMatch(),
			middlewares.TruckExists(db),
			middlewares.TruckRatingGate(db),
			middlewares.RequireSelfBody(),
			middlewares.RequireSelfRecord(),
			ratingCtrl.UpdateTruckRating)

		t.POST("/:truck_id/favorites",
			middlewares.ValidFavorite(),
			middlewares.TruckIdsMatch(),
			middlewares.TruckExists(db),
			middlewares.FavoriteGate(db),
			middlewares.RequireSelfBody(),
			favoriteCtrl.Create)
		t.DELETE("/:truck_id/favorites/:favorite_id",
			middlewares.TruckExists(db),
			middlewares.FavoriteGate(db),
			middlewares.RequireSelfRecord(),
			favoriteCtrl.Delete)
	}

	// Items (public reads)
	r.GET("/items/:item_id", middlewares.ItemExists(db), itemCtrl.Detail)
	r.GET("/items/:item_id/photos", middlewares.ItemExists(db), photoCtrl.List)

	// Items (owner-only mutations through the parent truck)
	i := r.Group("/items", restricted)
	{
		i.POST("",
			middlewares.ValidItem(),
			middlewares.TruckExistsBody(db),
			middlewares.RequireBodyTruckOwner(owners),
			itemCtrl.Create)
		i.PUT("/:item_id",
			middlewares.ValidItem(),
			middlewares.ItemExists(db),
			middlewares.RequireOwner(owners, services.KindItem, "item_id"),
			itemCtrl.Update)
		i.DELETE("/:item_id",
			middlewares.ItemExists(db),
			middlewares.RequireOwner(owners, services.KindItem, "item_id"),
			itemCtrl.Delete)

		i.POST("/:item_id/photos",
			middlewares.ValidPhoto(),
			middlewares.ItemIdsMatch(),
			middlewares.ItemExists(db),
			middlewares.RequireOwner(owners, services.KindItem, "item_id"),
			photoCtrl.Create)
		i.DELETE("/:item_id/photos/:photo_id",
			middlewares.ItemExists(db),
			middlewares.PhotoExists(db),
			middlewares.RequireOwner(owners, services.KindPhoto, "photo_id"),
			photoCtrl.Delete)

		i.POST("/:item_id/item-ratings",
			middlewares.ValidItemRating(),
			middlewares.ItemIdsMatch(),
			middlewares.ItemExists(db),
			middlewares.ItemRatingGate(db),
			middlewares.RequireSelfBody(),
			ratingCtrl.CreateItemRating)
		i.PUT("/:item_id/item-ratings/:item_rating_id",
			middlewares.ValidItemRating(),
			middlewares.ItemIdsMatch(),
			middlewares.ItemExists(db),
			middlewares.ItemRatingGate(db),
			middlewares.RequireSelfBody(),
			middlewares.RequireSelfRecord(),
			ratingCtrl.UpdateItemRating)
	}
}
