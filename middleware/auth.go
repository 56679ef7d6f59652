package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skill-swap/api-go/models"
	"github.com/skill-swap/api-go/utils"
	"gorm.io/gorm"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
}

// AuthMiddleware requires a valid bearer token and stores its claims on the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "authorization header is required")
			return
		}

		bearerToken := strings.Fields(authHeader)
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
			abortUnauthorized(c, "invalid token format")
			return
		}

		claims, err := utils.ParseToken(secret, bearerToken[1])
		if errors.Is(err, utils.ErrTokenExpired) {
			abortUnauthorized(c, "token expired")
			return
		}
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		utils.SetUser(c, &utils.UserClaims{
			UserID:  claims.UserID,
			Email:   claims.Email,
			IsAdmin: claims.IsAdmin,
		})
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware. The admin and banned flags
// come from the store, not the token.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := utils.GetUser(c)
		if claims == nil {
			abortUnauthorized(c, "user not authenticated")
			return
		}

		var user models.User
		err := db.WithContext(c.Request.Context()).Select("id", "is_admin", "is_banned").First(&user, claims.UserID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, err)
			return
		}
		if err != nil || !user.IsAdmin || user.IsBanned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			return
		}
		c.Next()
	}
}
