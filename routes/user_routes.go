package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/controllers"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController, leaderboardController *controllers.LeaderboardController) {
	users := protected.Group("/users")
	{
		// Own profile
		users.GET("/profile", userController.GetProfile)
		users.PUT("/profile", userController.UpdateProfile)

		users.GET("/search", userController.SearchUsers)
		users.GET("/top", leaderboardController.GetTopUsers)
		users.GET("/:userId", userController.GetUserProfile)
	}
}
