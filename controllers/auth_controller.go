package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input types.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	user, token, err := ac.Auth.Register(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user.Public(),
		"token":   token,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input types.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	user, token, err := ac.Auth.Login(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user.Public(),
		"token":   token,
	})
}

func (ac *AuthController) AdminLogin(c *gin.Context) {
	var input types.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	user, token, err := ac.Auth.AdminLogin(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Admin login successful",
		"user":    user.Public(),
		"token":   token,
	})
}
