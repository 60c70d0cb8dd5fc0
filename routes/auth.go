package routes

import (
	"brainscript/controllers"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.Engine) {
	auth := router.Group("/auth")
	auth.GET("/google", controllers.GoogleLogin)
	auth.GET("/google/callback", controllers.GoogleCallback)
	auth.POST("/logout", controllers.Logout)
}
