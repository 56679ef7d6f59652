package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	// Multipart field "photo", stored inline as a data URI
	r.POST("/users/profile-photo", uploadController.UploadProfilePhoto)
}
