package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/portfolio-site/go-portfolio-backend/internal/api/http"
	"github.com/portfolio-site/go-portfolio-backend/internal/content"
	contenthttp "github.com/portfolio-site/go-portfolio-backend/internal/content/http"
	"github.com/portfolio-site/go-portfolio-backend/internal/middleware"
	portfoliohttp "github.com/portfolio-site/go-portfolio-backend/internal/portfolio/http"
	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/service"
	"github.com/portfolio-site/go-portfolio-backend/internal/ratelimit"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	DB          *sql.DB // nil when no relational backend is configured
	Data        *service.DataService
	Content     *content.Cache
	ResumePath  string
	Limiter     *ratelimit.Limiter
	RateLimit   ratelimit.Config
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins: dep.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-Id"},
		MaxAge:       12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	portfolioHandler := portfoliohttp.New(dep.Data)
	portfolioHandler.Register(api, middleware.RateLimit(dep.Limiter, "contact", dep.RateLimit))

	contentHandler := contenthttp.New(dep.Content, dep.ResumePath)
	contentHandler.Register(api)

	return r
}
