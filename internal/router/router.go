package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yukikurage/client-task-api/internal/handlers"
	"github.com/yukikurage/client-task-api/internal/middleware"
	"github.com/yukikurage/client-task-api/internal/observability/metrics"
	"github.com/yukikurage/client-task-api/internal/ratelimit"
	"github.com/yukikurage/client-task-api/internal/services"
)

// Deps holds everything the HTTP layer needs.
type Deps struct {
	Log         *slog.Logger
	CORSOrigins []string

	Auth     *services.AuthService
	Tokens   *services.TokenService
	Clients  *services.ClientService
	Tasks    *services.TaskService
	Comments *services.CommentService
	Stats    *services.StatsService

	// AuthLimiter throttles the public auth routes. Nil disables throttling.
	AuthLimiter ratelimit.Limiter

	// Ready lists dependencies checked by /ready.
	Ready map[string]handlers.Pinger
}

// New builds the gin engine with every route registered.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Log),
		metrics.HTTPMetricsMiddleware(),
		cors.New(corsConfig(deps.CORSOrigins)),
	)

	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Tokens, deps.Log)
	clientHandler := handlers.NewClientHandler(deps.Clients, deps.Log)
	taskHandler := handlers.NewTaskHandler(deps.Tasks, deps.Log)
	commentHandler := handlers.NewCommentHandler(deps.Comments, deps.Log)
	statsHandler := handlers.NewStatsHandler(deps.Stats, deps.Log)
	healthHandler := handlers.NewHealthHandler(deps.Ready, deps.Log)

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(deps.Tokens, deps.Auth, deps.Log)

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			public := auth.Group("")
			if deps.AuthLimiter != nil {
				public.Use(middleware.RateLimit(deps.AuthLimiter, deps.Log))
			}
			public.POST("/register", authHandler.Register)
			public.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Client routes (protected)
		clients := api.Group("/clients")
		clients.Use(requireAuth)
		{
			clients.GET("", clientHandler.ListClients)
			clients.POST("", clientHandler.CreateClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("/:client_id", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Comment routes (protected)
		comments := api.Group("/comments")
		comments.Use(requireAuth)
		{
			comments.GET("/:task_id", commentHandler.ListComments)
			comments.POST("", commentHandler.CreateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		api.GET("/stats", requireAuth, statsHandler.GetStats)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowAll(origins) {
		// Credentials cannot be combined with a wildcard origin.
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

func allowAll(origins []string) bool {
	if len(origins) == 0 {
		return true
	}
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
