package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/utils"
)

type ValidationController struct {
	Auth *services.AuthService
}

func NewValidationController(auth *services.AuthService) *ValidationController {
	return &ValidationController{Auth: auth}
}

// ValidateEmail tells the registration form whether an email is still free.
func (vc *ValidationController) ValidateEmail(c *gin.Context) {
	available, err := vc.Auth.EmailAvailable(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"available": available},
	})
}
