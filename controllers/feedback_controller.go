package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: feedback}
}

func (fc *FeedbackController) Submit(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	var input types.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	feedback, err := fc.Feedback.Submit(c.Request.Context(), currentUser.UserID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    feedback,
		Message: "Feedback submitted successfully",
	})
}

func (fc *FeedbackController) ForUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "userId")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	feedback, err := fc.Feedback.ForUser(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: feedback})
}
