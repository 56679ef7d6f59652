package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/controllers"
)

func SetupMessageRoutes(protected *gin.RouterGroup, messageController *controllers.MessageController) {
	protected.GET("/messages", messageController.GetMessages)
}
