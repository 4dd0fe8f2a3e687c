package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dgamboa/foodtrucks-backend/entity"
	"github.com/dgamboa/foodtrucks-backend/middlewares"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/repository"
	"github.com/dgamboa/foodtrucks-backend/services"
	"github.com/dgamboa/foodtrucks-backend/utils"
)

type UserController struct {
	users *repository.UserRepository
	auth  *services.AuthService
}

func NewUserController(users *repository.UserRepository, auth *services.AuthService) *UserController {
	return &UserController{users: users, auth: auth}
}

// GET /users/:user_id (self only)
func (u *UserController) Profile(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := u.users.FindByID(uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, fmt.Sprintf("could not find user with id %d", uid))
		return
	}
	if err != nil {
		resp.Internal(c, err)
		return
	}

	favorites, err := u.users.FavoriteTrucks(uid)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	owned, err := u.users.TrucksOwned(uid)
	if err != nil {
		resp.Internal(c, err)
		return
	}

	resp.OK(c, gin.H{
		"user_id":         user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"user_lat":        user.UserLat,
		"user_long":       user.UserLong,
		"favorite_trucks": favorites,
		"trucks_owned":    owned,
	})
}

// PUT /users/:user_id (self only)
func (u *UserController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	edits := c.MustGet("userEdits").(middlewares.UserEdits)

	updates := map[string]any{}
	if edits.Email != nil {
		updates["email"] = *edits.Email
	}
	if edits.UserLat != nil {
		updates["user_lat"] = *edits.UserLat
	}
	if edits.UserLong != nil {
		updates["user_long"] = *edits.UserLong
	}

	if err := u.users.Update(uid, updates); err != nil {
		resp.Internal(c, err)
		return
	}

	user, err := u.users.FindByID(uid)
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, userView(user))
}

// PUT /users/:user_id/password (self only, old password re-verified)
func (u *UserController) ChangePassword(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	change := c.MustGet("passwordChange").(middlewares.PasswordChange)

	err := u.auth.ChangePassword(uid, change.OldPassword, change.NewPassword)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.Internal(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "password updated"})
}

func userView(user *entity.User) gin.H {
	return gin.H{
		"user_id":   user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"user_lat":  user.UserLat,
		"user_long": user.UserLong,
	}
}
