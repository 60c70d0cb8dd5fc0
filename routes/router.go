package routes

import (
	"net/http"

	"brainscript/controllers"
	"brainscript/internal/logger"
	"brainscript/internal/ratelimit"
	"brainscript/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	AllowedOrigins []string
	Limiter        *ratelimit.Limiter
	Limits         Limits
	Log            *logger.Logger
}

// NewRouter builds the engine with every route mounted. Controllers must be
// initialised before it serves requests.
func NewRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middlewares.RequestID(), middlewares.RequestLogger(opts.Log))

	// Set trusted proxies (adjust as needed)
	_ = router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
			AllowCredentials: true,
		}))
	}
	router.Use(func(c *gin.Context) {
		c.Header("Referrer-Policy", "no-referrer-when-downgrade")
		c.Next()
	})

	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "BrainScript server is running") })
	router.GET("/health", controllers.Health)
	SetupAuthRoutes(router)

	api := router.Group("/api/user")
	api.Use(middlewares.AuthMiddleware())
	SetupUserRoutes(api, opts.Limiter, opts.Limits, opts.Log)
	SetupFileRoutes(api)

	return router
}
