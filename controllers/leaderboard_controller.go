package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
)

type LeaderboardController struct {
	Users *services.UserService
}

func NewLeaderboardController(users *services.UserService) *LeaderboardController {
	return &LeaderboardController{Users: users}
}

// GetTopUsers ranks public members by their average feedback rating.
func (lc *LeaderboardController) GetTopUsers(c *gin.Context) {
	var query types.TopUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	top, err := lc.Users.TopRated(c.Request.Context(), query.Limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    top,
		Meta:    gin.H{"limit": query.Limit, "count": len(top)},
	})
}
