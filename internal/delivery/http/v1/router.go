package v1

import (
	"net/http"
	"time"

	"go-vacancy-backend/config"
	"go-vacancy-backend/internal/delivery/http/middleware"
	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AccountUC     domain.AccountUsecase
	VacancyUC     domain.VacancyUsecase
	ApplicationUC domain.ApplicationUsecase
	HealthUC      domain.HealthUsecase
	Redis         *goredis.Client // optional, backs the rate limiters
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// X-Forwarded-For is honoured only from the configured proxies, so the
	// rate limiters key on an address the client cannot choose.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Log.Warn("invalid trusted proxies, trusting none", "proxies", cfg.TrustedProxies, "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middlewares
	r.Use(cors.New(corsConfig(cfg))) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler(cfg.Debug()))

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		status, ok := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded CVs, served as-is
	r.Static("/"+domain.UploadsURLPrefix, cfg.UploadDir)

	window := cfg.RateLimitWindow()
	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Redis, cfg.RateLimitLoginThreshold, window))
	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig(deps.Redis, cfg.RateLimitUploadThreshold, window))

	NewAccountHandler(r, deps.AccountUC, loginLimit)
	NewVacancyHandler(r, deps.VacancyUC)
	NewApplicationHandler(r, deps.ApplicationUC, uploadLimit, cfg.MaxCVBytes)

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 0 || (len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowOrigins
	}
	c.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "Retry-After"}
	c.MaxAge = 12 * time.Hour
	return c
}
