package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/controllers"
)

func SetupSwapRoutes(protected *gin.RouterGroup, swapController *controllers.SwapController) {
	swaps := protected.Group("/swaps")
	{
		swaps.POST("/send", swapController.SendRequest)
		swaps.PATCH("/:id/respond", swapController.Respond)
		swaps.PATCH("/:id/complete", swapController.Complete)
		swaps.GET("/list", swapController.List)
	}
}
