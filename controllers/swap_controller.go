package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
)

type SwapController struct {
	Swaps *services.SwapService
}

func NewSwapController(swaps *services.SwapService) *SwapController {
	return &SwapController{Swaps: swaps}
}

func (sc *SwapController) SendRequest(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	var input types.SendSwapRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	swap, err := sc.Swaps.Create(c.Request.Context(), currentUser.UserID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    swap,
		Message: "Swap request sent successfully",
	})
}

func (sc *SwapController) Respond(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	swapID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	var input types.RespondSwapRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	swap, err := sc.Swaps.Respond(c.Request.Context(), currentUser.UserID, swapID, input.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    swap,
		Message: "Swap request " + swap.Status,
	})
}

func (sc *SwapController) Complete(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	swapID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	swap, err := sc.Swaps.Complete(c.Request.Context(), currentUser.UserID, swapID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    swap,
		Message: "Swap marked as completed",
	})
}

func (sc *SwapController) List(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	var query types.ListSwapsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	swaps, err := sc.Swaps.ListForUser(c.Request.Context(), currentUser.UserID, query.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: swaps})
}
