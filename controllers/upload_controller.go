package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/utils"
)

type UploadController struct {
	Photos *services.PhotoService
}

func NewUploadController(photos *services.PhotoService) *UploadController {
	return &UploadController{Photos: photos}
}

// UploadProfilePhoto accepts a multipart "photo" field and stores it on the caller's profile.
func (uc *UploadController) UploadProfilePhoto(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.RespondError(c, utils.Validation("photo file is required"))
		return
	}
	if fileHeader.Size > services.MaxPhotoSize {
		utils.RespondError(c, utils.Validation("file too large, maximum size is 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	defer file.Close()

	// One byte past the limit lets the service see oversize bodies.
	data, err := io.ReadAll(io.LimitReader(file, services.MaxPhotoSize+1))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	user, err := uc.Photos.Upload(c.Request.Context(), currentUser.UserID, data, fileHeader.Filename)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    user.Public(),
		Message: "Profile photo updated successfully",
	})
}
