// Package router sets up the HTTP routes and the embedded templates.
package router

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/sahidmustakim/hci-agent/internal/handlers"
	"github.com/sahidmustakim/hci-agent/internal/middleware"
	"github.com/sahidmustakim/hci-agent/web"
)

// Setup creates and configures the Gin router.
func Setup(h *handlers.Handler) (*gin.Engine, error) {
	// Must happen before the engine is constructed; the GIN_MODE env
	// var alone is read too early (package init) to configure here.
	gin.SetMode(h.Cfg.GinMode)

	r := gin.Default()
	r.Use(middleware.CORS(h.Cfg.AllowedOrigins))

	templates, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(template.Must(template.ParseFS(templates, "*.html")))

	rateLimiter := middleware.NewRateLimiter(h.Cfg.RateLimit)

	r.GET("/", h.Index)
	// Only the model-calling route is rate limited.
	r.POST("/", rateLimiter.Limit(), h.Analyze)
	r.GET("/download_pdf/:token", h.DownloadPDF)
	r.GET("/health", h.HealthCheck)

	return r, nil
}
