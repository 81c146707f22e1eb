// Package httpapi exposes the dashboard use cases over JSON.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/twillhq/talentboard/internal/app"
)

// Server holds the use cases behind the HTTP routes.
type Server struct {
	Alerts     app.AlertUseCase
	Roles      app.RoleUseCase
	Candidates app.CandidateUseCase
	Metrics    app.MetricsUseCase

	// Clock supplies "now" when a request has no now parameter.
	Clock func() time.Time
	// DefaultAdvisor scopes list endpoints when the request names no advisor.
	DefaultAdvisor string
	Logger         *slog.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(s *Server) *gin.Engine {
	if s.Clock == nil {
		s.Clock = time.Now
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if s.Logger != nil {
		router.Use(requestLogger(s.Logger))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/stages", s.listStages)
	api.GET("/alerts", s.dashboardAlerts)
	api.GET("/metrics", s.metricsSummary)

	api.GET("/roles", s.listRoles)
	api.GET("/roles/:id", s.roleOverview)
	api.GET("/roles/:id/alerts", s.roleAlerts)
	api.PATCH("/roles/:id/priority", s.updatePriority)

	api.GET("/candidates/:id", s.candidateView)
	api.GET("/candidates/:id/options", s.candidateOptions)
	api.GET("/candidates/:id/history", s.candidateHistory)
	api.POST("/candidates/:id/stage", s.stageTransition)
	api.POST("/candidates/:id/clear-alert", s.clearAlert)
	api.POST("/candidates/:id/touch", s.touch)

	return router
}

// requestLogger writes one structured record per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		attrs := []any{
			"method", c.Request.Method,
			"route", route,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.Last().Error())
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), "http_request", attrs...)
			return
		}
		logger.InfoContext(c.Request.Context(), "http_request", attrs...)
	}
}

// now reads the optional RFC3339 now query parameter, converted into the
// clock's location so day boundaries stay consistent.
func (s *Server) now(c *gin.Context) (time.Time, error) {
	clock := s.Clock()
	raw := c.Query("now")
	if raw == "" {
		return clock, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, badRequest("now must be RFC3339: %q", raw)
	}
	return t.In(clock.Location()), nil
}

func (s *Server) advisor(c *gin.Context) string {
	if v, ok := c.GetQuery("advisor"); ok {
		return v
	}
	return s.DefaultAdvisor
}
