package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/controllers"
)

func SetupFeedbackRoutes(protected *gin.RouterGroup, feedbackController *controllers.FeedbackController) {
	feedback := protected.Group("/feedback")
	{
		feedback.POST("/submit", feedbackController.Submit)
		feedback.GET("/user/:userId", feedbackController.ForUser)
	}
}
