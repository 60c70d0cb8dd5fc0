package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brainscript/internal/logger"
	"brainscript/middlewares"
	"brainscript/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdentityProvider turns an OAuth redirect into a verified identity
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Identify(ctx context.Context, code string) (services.GoogleIdentity, error)
}

type Options struct {
	Users         *services.UserService
	Identity      IdentityProvider // nil disables OAuth login
	Log           *logger.Logger
	ClientURL     string
	SecureCookies bool
	SessionTTL    time.Duration
}

var (
	users         *services.UserService
	identity      IdentityProvider
	log           = logger.Nop()
	clientURL     = "/"
	secureCookies bool
	sessionTTL    = 7 * 24 * time.Hour
)

// Init wires the handlers to their collaborators
func Init(opts Options) {
	users = opts.Users
	identity = opts.Identity
	if opts.Log != nil {
		log = opts.Log
	}
	if opts.ClientURL != "" {
		clientURL = opts.ClientURL
	}
	secureCookies = opts.SecureCookies
	if opts.SessionTTL > 0 {
		sessionTTL = opts.SessionTTL
	}
}

func currentUser(c *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return id, ok
}

// respondError maps a service error onto a status. Unclassified errors are
// logged and replaced by fallback so storage details never reach the client.
func respondError(c *gin.Context, err error, fallback string) {
	var validation *services.ValidationError
	var missing *services.NotFoundError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message})
	case errors.As(err, &missing):
		c.JSON(http.StatusNotFound, gin.H{"error": missing.Error()})
	case errors.Is(err, services.ErrFavoriteUnsupported):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Your data changed in another session, please retry"})
	default:
		_ = c.Error(err)
		log.Error(fallback, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
