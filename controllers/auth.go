package controllers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"brainscript/middlewares"
	"brainscript/utils"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// GoogleLogin redirects the browser to Google's consent screen
func GoogleLogin(c *gin.Context) {
	if identity == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
		return
	}

	state, err := utils.GenerateRandomToken(24)
	if err != nil {
		respondError(c, err, internalError)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, int((10 * time.Minute).Seconds()), "/", "", secureCookies, true)
	c.Redirect(http.StatusFound, identity.AuthCodeURL(state))
}

// GoogleCallback finishes the OAuth flow, records the login and issues a
// session cookie.
func GoogleCallback(c *gin.Context) {
	if identity == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google login is not configured"})
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	got := c.Query("state")
	if err != nil || expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(got)) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State mismatch"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, "", -1, "/", "", secureCookies, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	who, err := identity.Identify(c.Request.Context(), code)
	if err != nil {
		log.Warn("google authentication failed", "error", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication failed"})
		return
	}

	user, err := users.LoginWithGoogle(c.Request.Context(), who)
	if err != nil {
		respondError(c, err, internalError)
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex())
	if err != nil {
		respondError(c, err, internalError)
		return
	}
	c.SetCookie(middlewares.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", secureCookies, true)
	c.Redirect(http.StatusFound, clientURL)
}

func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Health is polled by the hosting platform
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}
