package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := uc.Users.Get(c.Request.Context(), currentUser.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user.Public()})
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	var input types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	user, err := uc.Users.UpdateProfile(c.Request.Context(), currentUser.UserID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    user.Public(),
		Message: "Profile updated successfully",
	})
}

// GetUserProfile returns another member's public profile.
func (uc *UserController) GetUserProfile(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	userID, err := utils.ParseUintParam(c, "userId")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	user, err := uc.Users.GetPublicProfile(c.Request.Context(), currentUser.UserID, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user.Public()})
}

func (uc *UserController) SearchUsers(c *gin.Context) {
	var query types.SearchUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	limit, offset := utils.Page(query.Page, query.Limit, 10, 100)
	users, err := uc.Users.Search(c.Request.Context(), services.SearchParams{
		Skill:        query.Skill,
		Location:     query.Location,
		Availability: query.Availability,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    models.PublicUsers(users),
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    limit,
			ItemCount:   len(users),
			HasMore:     len(users) == limit,
		},
	})
}
