package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/dgamboa/foodtrucks-backend/middlewares"
	"github.com/dgamboa/foodtrucks-backend/pkg/resp"
	"github.com/dgamboa/foodtrucks-backend/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	creds := c.MustGet("credentials").(middlewares.Credentials)

	user, token, err := a.auth.Register(creds.Username, creds.Email, creds.Password)
	if errors.Is(err, services.ErrUsernameTaken) {
		resp.Unprocessable(c, "username taken")
		return
	}
	if err != nil {
		resp.Internal(c, err)
		return
	}

	resp.Created(c, gin.H{
		"message": fmt.Sprintf("Welcome %s!", user.Username),
		"token":   token,
		"registered": gin.H{
			"user_id":  user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	creds := c.MustGet("credentials").(middlewares.Credentials)

	user, token, err := a.auth.Login(creds.Username, creds.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err != nil {
		resp.Internal(c, err)
		return
	}

	resp.OK(c, gin.H{
		"message": fmt.Sprintf("Welcome %s!", user.Username),
		"token":   token,
		"loggedIn": gin.H{
			"user_id":  user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
