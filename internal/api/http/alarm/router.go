package alarm

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	grpcapi "github.com/oshokin/light-alarm/internal/api/grpc/alarm"
	"github.com/oshokin/light-alarm/internal/logger"
)

// corsMaxAge is how long browsers may cache preflight responses.
const corsMaxAge = 12 * time.Hour

// Router holds the gin engine serving the HTTP API.
type Router struct {
	engine  *gin.Engine
	handler *Handler
}

// NewRouter builds the HTTP API over the provided service. ctx carries the
// logger used for request logs.
func NewRouter(ctx context.Context, service grpcapi.Service) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(ctx), cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderActorHostname, HeaderActorUsername},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        corsMaxAge,
	}))

	r := &Router{
		engine:  engine,
		handler: NewHandler(service),
	}

	r.setupRoutes()

	return r
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.engine.ServeHTTP(w, req)
}

func (r *Router) setupRoutes() {
	h := r.handler

	v1 := r.engine.Group("/api/v1")
	{
		alarms := v1.Group("/alarms")
		{
			alarms.GET("", h.ListAlarms)
			alarms.POST("", h.CreateAlarm)
			alarms.DELETE("", h.ClearAlarms)
			alarms.GET("/:id", h.GetAlarm)
			alarms.DELETE("/:id", h.DeleteAlarm)
		}

		active := v1.Group("/active")
		{
			active.GET("", h.Status)
			active.POST("/stop", h.StopAlarm)
			active.POST("/snooze", h.SnoozeAlarm)
			active.DELETE("/auto_turn_off", h.CancelAutoTurnOff)
		}

		clock := v1.Group("/time")
		{
			clock.GET("", h.GetTime)
			clock.PUT("", h.SetTime)
			clock.POST("/sync", h.SyncTime)
		}
	}
}

// RequestLogger logs every request with its status and latency.
func RequestLogger(ctx context.Context) gin.HandlerFunc {
	ctx = logger.WithName(ctx, "http")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		kvs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.ErrorKV(ctx, "HTTP request", kvs...)
		case status >= http.StatusBadRequest:
			logger.WarnKV(ctx, "HTTP request", kvs...)
		default:
			logger.DebugKV(ctx, "HTTP request", kvs...)
		}
	}
}
