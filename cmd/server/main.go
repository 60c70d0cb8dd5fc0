package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"brainscript/config"
	"brainscript/controllers"
	"brainscript/db"
	"brainscript/internal/logger"
	"brainscript/internal/ratelimit"
	"brainscript/routes"
	"brainscript/services"
	"brainscript/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional, env vars override it)")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fallback, _ := logger.New("dev")
		fallback.Fatal("failed to load config", "error", err)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open user store", "error", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.DisconnectMongoDB(shutdownCtx)
	}()

	utils.SetJWTSecret(cfg.JWT.Secret, time.Duration(cfg.JWT.Expiry)*time.Minute)
	userService := services.NewUserService(store, log, time.Duration(cfg.Database.TimeoutSeconds)*time.Second)

	opts := controllers.Options{
		Users:         userService,
		Log:           log,
		ClientURL:     cfg.Server.ClientURL,
		SecureCookies: cfg.Server.Mode == gin.ReleaseMode,
		SessionTTL:    time.Duration(cfg.JWT.Expiry) * time.Minute,
	}
	if cfg.GoogleEnabled() {
		auth, err := services.NewGoogleAuth(ctx, cfg.Google.Issuer, cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
		if err != nil {
			log.Error("google login disabled", "error", err)
		} else {
			opts.Identity = auth
		}
	} else {
		log.Warn("Google OAuth credentials not configured, OAuth login will be disabled")
	}
	controllers.Init(opts)

	limiter := ratelimit.NewLimiter(nil)
	if cfg.Redis.Addr != "" {
		rdb, err := ratelimit.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("rate limiting disabled", "error", err)
		} else {
			defer rdb.Close()
			limiter = ratelimit.NewLimiter(rdb)
		}
	}

	gin.SetMode(cfg.Server.Mode)
	router := routes.NewRouter(routes.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Limiter:        limiter,
		Limits: routes.Limits{
			TrackPerMinute: cfg.RateLimit.TrackPerMinute,
			QuizPerMinute:  cfg.RateLimit.QuizPerMinute,
		},
		Log: log,
	})

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("HTTP server closed")
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (services.UserStore, error) {
	if cfg.Database.Driver == "memory" {
		log.Warn("using in-memory user store, data is lost on restart")
		return db.NewMemoryUserStore(), nil
	}

	if err := db.ConnectMongoDB(ctx, cfg.Database.URI); err != nil {
		return nil, err
	}
	log.Info("connected to MongoDB", "database", db.MongoDatabase.Name())

	store := db.NewMongoUserStore(db.MongoDatabase)
	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := store.EnsureIndexes(indexCtx); err != nil {
		return nil, err
	}
	return store, nil
}
