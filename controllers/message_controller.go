package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/types"
	"github.com/skill-swap/api-go/utils"
)

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

// GetMessages lists active platform messages. The client passes the last id it
// has seen as ?since= and gets back how many are newer.
func (mc *MessageController) GetMessages(c *gin.Context) {
	var query types.MessagesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	msgs, unread, err := mc.Messages.Active(c.Request.Context(), query.Since)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    msgs,
		Meta:    gin.H{"unreadCount": unread},
	})
}

func (mc *MessageController) Broadcast(c *gin.Context) {
	currentUser, ok := requireUser(c)
	if !ok {
		return
	}

	var input types.BroadcastRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.BindingError(err))
		return
	}

	msg, err := mc.Messages.Broadcast(c.Request.Context(), currentUser.UserID, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    msg,
		Message: "Message broadcast successfully",
	})
}
