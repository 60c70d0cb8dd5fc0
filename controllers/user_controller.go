package controllers

import (
	"errors"
	"io"
	"net/http"

	"brainscript/services"

	"github.com/gin-gonic/gin"
)

const internalError = "Internal server error"

// Track applies a watch/open time ping to today's activity
func Track(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var delta services.ActivityDelta
	if err := c.ShouldBindJSON(&delta); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	if err := users.Track(c.Request.Context(), userID, delta); err != nil {
		respondError(c, err, internalError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetDashboard returns stats, activity, quiz history and the streak
func GetDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	dashboard, err := users.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, internalError)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func GetLearningHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := users.LearningHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, internalError)
		return
	}
	c.JSON(http.StatusOK, history)
}

func SaveQuizResult(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req services.QuizResult
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	history, err := users.RecordQuizResult(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, internalError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "quizHistory": history})
}

func UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name"`
		AccountType string `json:"accountType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	user, err := users.UpdateProfile(c.Request.Context(), userID, req.Name, req.AccountType)
	if err != nil {
		respondError(c, err, internalError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Profile()})
}
