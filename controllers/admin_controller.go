package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
)

type AdminController struct {
	Admin *services.AdminService
	Swaps *services.SwapService
}

func NewAdminController(admin *services.AdminService, swaps *services.SwapService) *AdminController {
	return &AdminController{Admin: admin, Swaps: swaps}
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.Admin.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: models.PublicUsers(users)})
}

func (ac *AdminController) BanUser(c *gin.Context) {
	ac.setBanned(c, true)
}

func (ac *AdminController) UnbanUser(c *gin.Context) {
	ac.setBanned(c, false)
}

func (ac *AdminController) setBanned(c *gin.Context, banned bool) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	targetID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if err := ac.Admin.SetBanned(c.Request.Context(), currentUser.UserID, targetID, banned); err != nil {
		utils.RespondError(c, err)
		return
	}

	message := "User unbanned successfully"
	if banned {
		message = "User banned successfully"
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: message})
}

func (ac *AdminController) ListSkills(c *gin.Context) {
	skills, err := ac.Admin.ListSkills(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: skills})
}

func (ac *AdminController) RemoveSkill(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "userId")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var input types.RemoveSkillRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	removed, err := ac.Admin.RemoveSkill(c.Request.Context(), userID, input.Skill, input.Type)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    gin.H{"removed": removed},
		Message: "Skill removed successfully",
	})
}

func (ac *AdminController) ListSwaps(c *gin.Context) {
	swaps, err := ac.Swaps.ListAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: swaps})
}
