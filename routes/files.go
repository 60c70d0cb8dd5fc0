package routes

import (
	"brainscript/controllers"

	"github.com/gin-gonic/gin"
)

func SetupFileRoutes(router *gin.RouterGroup) {
	router.POST("/save-transcript", controllers.SaveTranscript)
	router.POST("/save-summary", controllers.SaveSummary)
	router.POST("/save-download", controllers.SaveDownload)

	router.GET("/files", controllers.ListFiles)
	router.GET("/files/:fileType", controllers.ListFilesByType)
	router.PUT("/files/:fileType/:fileId/toggle-favorite", controllers.ToggleFavorite)
	router.DELETE("/files/:fileType/:fileId", controllers.DeleteFile)
}
