package controllers

import (
	"net/http"

	"brainscript/services"

	"github.com/gin-gonic/gin"
)

func SaveNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	note, err := users.SaveNote(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to save note")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Note saved successfully", "note": note})
}

// GetNote never 404s on a missing note, it returns an empty one instead
func GetNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	videoID := c.Param("videoId")

	note, err := users.GetNote(c.Request.Context(), userID, videoID)
	if err != nil {
		respondError(c, err, "Failed to fetch note")
		return
	}
	if note == nil {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"note": gin.H{
				"videoId":   videoID,
				"content":   "",
				"createdAt": nil,
				"updatedAt": nil,
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

func ListNotes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	notes, err := users.ListNotes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to fetch notes")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notes": notes})
}

func DeleteNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := users.DeleteNote(c.Request.Context(), userID, c.Param("videoId")); err != nil {
		respondError(c, err, "Failed to delete note")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Note deleted successfully"})
}
