package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/controllers"
)

func SetupAdminRoutes(
	admin *gin.RouterGroup,
	adminController *controllers.AdminController,
	messageController *controllers.MessageController,
	reportController *controllers.ReportController,
) {
	admin.GET("/users", adminController.ListUsers)
	admin.PATCH("/users/:id/ban", adminController.BanUser)
	admin.PATCH("/users/:id/unban", adminController.UnbanUser)

	admin.GET("/skills", adminController.ListSkills)
	admin.DELETE("/skills/:userId", adminController.RemoveSkill)

	admin.GET("/swaps", adminController.ListSwaps)
	admin.POST("/messages/broadcast", messageController.Broadcast)

	reports := admin.Group("/reports")
	{
		reports.GET("/users", reportController.UsersReport)
		reports.GET("/swaps", reportController.SwapsReport)
		reports.GET("/feedback", reportController.FeedbackReport)
		reports.GET("/download/:type", reportController.Download)
	}
}
