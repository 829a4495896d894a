package handlers

import (
	"errors"
	"net/http"

	"workasana/internal/domain"
	"workasana/internal/logger"
	"workasana/internal/repository"
	"workasana/internal/service"
	"workasana/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB       *pgxpool.Pool
	Owners   *repository.OwnerRepository
	Teams    *repository.TeamRepository
	Projects *repository.ProjectRepository
	Tags     *repository.TagRepository
	Tasks    *repository.TaskRepository
	Users    *repository.UserRepository
	Reports  *service.ReportService
	Hub      *ws.Hub
}

func NewHandler(db *pgxpool.Pool, hub *ws.Hub) *Handler {
	tasks := repository.NewTaskRepository(db)
	return &Handler{
		DB:       db,
		Owners:   repository.NewOwnerRepository(db),
		Teams:    repository.NewTeamRepository(db),
		Projects: repository.NewProjectRepository(db),
		Tags:     repository.NewTagRepository(db),
		Tasks:    tasks,
		Users:    repository.NewUserRepository(db),
		Reports:  service.NewReportService(tasks),
		Hub:      hub,
	}
}

// getUserID extracts the authenticated user id set by the JWT middleware.
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// respondError maps domain sentinels to HTTP statuses. Anything unexpected
// is logged and hidden behind an opaque 500 body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
