package controllers

import (
	"net/http"

	"brainscript/models"
	"brainscript/services"

	"github.com/gin-gonic/gin"
)

func SaveTranscript(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.TranscriptInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	if err := users.SaveTranscript(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "Failed to save transcript")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Transcript saved successfully"})
}

func SaveSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.SummaryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	if err := users.SaveSummary(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "Failed to save summary")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Summary saved successfully"})
}

func SaveDownload(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.DownloadInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	if err := users.SaveDownload(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "Failed to record download")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Download recorded successfully"})
}

func ListFiles(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	files, err := users.ListFiles(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve files")
		return
	}
	c.JSON(http.StatusOK, files)
}

func fileTypeParam(c *gin.Context) (models.FileType, bool) {
	ft, ok := models.ParseFileType(c.Param("fileType"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type"})
	}
	return ft, ok
}

func ListFilesByType(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ft, ok := fileTypeParam(c)
	if !ok {
		return
	}

	files, err := users.ListFilesByType(c.Request.Context(), userID, ft)
	if err != nil {
		respondError(c, err, "Failed to retrieve files")
		return
	}
	c.JSON(http.StatusOK, gin.H{"fileType": ft.String(), "files": files})
}

func ToggleFavorite(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ft, ok := fileTypeParam(c)
	if !ok {
		return
	}

	favorite, err := users.ToggleFavorite(c.Request.Context(), userID, ft, c.Param("fileId"))
	if err != nil {
		respondError(c, err, "Failed to update favorite status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "isFavorite": favorite})
}

func DeleteFile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	ft, ok := fileTypeParam(c)
	if !ok {
		return
	}

	if err := users.DeleteFile(c.Request.Context(), userID, ft, c.Param("fileId")); err != nil {
		respondError(c, err, "Failed to delete file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "File deleted successfully"})
}
