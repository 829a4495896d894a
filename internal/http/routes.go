package http

import (
	"os"
	"strconv"
	"time"

	"workasana/internal/http/handlers"
	"workasana/internal/http/middleware"
	"workasana/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool) {
	hub := ws.NewHub()
	h := handlers.NewHandler(db, hub)
	healthHandler := handlers.NewHealthHandler(db)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	apiRL := middleware.RedisRateLimit(apiRateLimit, apiRateWindow)
	authRL := middleware.RedisRateLimit(authRateLimit, authRateWindow)

	// Entities
	r.POST("/teams", apiRL, h.CreateTeam)
	r.GET("/teams", apiRL, h.ListTeams)
	r.POST("/projects", apiRL, h.CreateProject)
	r.GET("/projects", apiRL, h.ListProjects)
	r.POST("/owners", apiRL, h.CreateOwner)
	r.GET("/owners", apiRL, h.ListOwners)
	r.POST("/tags", apiRL, h.CreateTag)
	r.GET("/tags", apiRL, h.ListTags)

	// Tasks
	r.POST("/tasks", apiRL, h.CreateTask)
	r.GET("/tasks", apiRL, h.ListTasks)
	r.PUT("/tasks/:id", apiRL, h.UpdateTask)
	r.DELETE("/tasks/:id", apiRL, h.DeleteTask)

	// Reports
	r.GET("/report/last-week-completed", apiRL, h.ReportLastWeekCompleted)
	r.GET("/report/pending", apiRL, h.ReportPending)
	r.GET("/report/closed-by-team", apiRL, h.ReportClosedByTeam)
	r.GET("/report/closed-by-owner", apiRL, h.ReportClosedByOwner)

	// Auth
	r.POST("/auth/signup", authRL, h.Signup)
	r.POST("/auth/login", authRL, h.Login)
	r.GET("/auth/me", middleware.JWT(), h.Me)
	r.GET("/users", apiRL, h.ListUsers)

	// Task event feed
	r.GET("/ws", h.WS(hub))
}
