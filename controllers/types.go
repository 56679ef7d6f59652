package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/utils"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	ItemCount   int  `json:"itemCount"`
	HasMore     bool `json:"hasMore"`
}

// requireUser returns the authenticated caller, writing a 401 when absent.
func requireUser(c *gin.Context) (*utils.UserClaims, bool) {
	user := utils.GetUser(c)
	if user == nil {
		utils.RespondError(c, utils.Unauthenticated("user not authenticated"))
		return nil, false
	}
	return user, true
}
