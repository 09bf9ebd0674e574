package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"vanbook/internal/infra/config"
	"vanbook/internal/infra/obs"
)

// SessionHTTP is the booking-session surface the router mounts. The widget
// is embedded cross-origin on unit pages, hence the permissive CORS setup.
type SessionHTTP interface {
	Create(c *gin.Context)
	Get(c *gin.Context)
	Tap(c *gin.Context)
	UpdateContact(c *gin.Context)
	Submit(c *gin.Context)
	WhatsAppLink(c *gin.Context)
}

type Handlers struct {
	Session SessionHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.Requests())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Session != nil {
		api.POST("/sessions", h.Session.Create)
		api.GET("/sessions/:id", h.Session.Get)
		api.POST("/sessions/:id/taps", h.Session.Tap)
		api.PUT("/sessions/:id/contact", h.Session.UpdateContact)
		api.POST("/sessions/:id/submit", h.Session.Submit)
		api.GET("/sessions/:id/whatsapp-link", h.Session.WhatsAppLink)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
