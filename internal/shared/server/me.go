package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
)

type principalResponse struct {
	UserID  string `json:"userId"`
	IsGuest bool   `json:"isGuest"`
}

// registerMeRoutes attaches the /me endpoint, which reports the caller's principal.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		if userID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}
		respond.OK(c, principalResponse{
			UserID:  userID,
			IsGuest: c.GetBool("isGuest"),
		})
	})
}
