package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseUintParam reads a positive numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, Validation("invalid " + name)
	}
	return uint(id), nil
}

// MaxPage bounds page numbers so the computed offset cannot overflow.
const MaxPage = 1_000_000

// Page converts page/limit query values into a clamped limit and offset.
func Page(page, limit, defaultLimit, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	return limit, (page - 1) * limit
}
