package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"workasana/internal/domain"
	"workasana/internal/repository"
	"workasana/internal/ws"

	"github.com/gin-gonic/gin"
)

type taskRequest struct {
	Name           string   `json:"name"`
	Project        int64    `json:"project"`
	Team           int64    `json:"team"`
	Owners         []int64  `json:"owners"`
	Tags           []string `json:"tags"`
	TimeToComplete float64  `json:"timeToComplete"`
	Status         string   `json:"status"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if req.Name == "" || req.Project == 0 || req.Team == 0 || len(req.Owners) == 0 || req.TimeToComplete <= 0 {
		respondError(c, fmt.Errorf("%w: name, project, team, owners and timeToComplete are required", domain.ErrValidation))
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	task := domain.Task{
		Name:           req.Name,
		ProjectID:      req.Project,
		TeamID:         req.Team,
		OwnerIDs:       req.Owners,
		Tags:           req.Tags,
		TimeToComplete: req.TimeToComplete,
		Status:         status,
	}
	if err := h.Tasks.Create(c.Request.Context(), &task); err != nil {
		respondError(c, err)
		return
	}

	h.Hub.PublishTask(ws.EventTaskCreated, task)
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	filter, err := taskFilterFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// taskFilterFromQuery maps the optional query params onto exact-match
// predicates. A status value outside the enum is passed through untouched;
// it simply matches nothing, same as any other non-existent exact value.
func taskFilterFromQuery(c *gin.Context) (repository.TaskFilter, error) {
	filter := repository.TaskFilter{
		Name:   c.Query("name"),
		Tag:    c.Query("tags"),
		Status: domain.Status(c.Query("status")),
	}

	for _, q := range []struct {
		key  string
		dest *int64
	}{
		{"project", &filter.ProjectID},
		{"team", &filter.TeamID},
		{"owners", &filter.OwnerID},
	} {
		raw := c.Query(q.key)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return repository.TaskFilter{}, fmt.Errorf("%w: %s must be an id", domain.ErrValidation, q.key)
		}
		*q.dest = id
	}
	return filter, nil
}

type taskPatchRequest struct {
	Name           *string  `json:"name"`
	Project        *int64   `json:"project"`
	Team           *int64   `json:"team"`
	Owners         []int64  `json:"owners"`
	Tags           []string `json:"tags"`
	TimeToComplete *float64 `json:"timeToComplete"`
	Status         *string  `json:"status"`
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req taskPatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	patch := repository.TaskPatch{
		Name:           req.Name,
		ProjectID:      req.Project,
		TeamID:         req.Team,
		OwnerIDs:       req.Owners,
		Tags:           req.Tags,
		TimeToComplete: req.TimeToComplete,
	}
	if req.Owners != nil && len(req.Owners) == 0 {
		respondError(c, fmt.Errorf("%w: owners must not be empty", domain.ErrValidation))
		return
	}
	if req.TimeToComplete != nil && *req.TimeToComplete <= 0 {
		respondError(c, fmt.Errorf("%w: timeToComplete must be positive", domain.ErrValidation))
		return
	}
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		patch.Status = &status
	}

	task, err := h.Tasks.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	h.Hub.PublishTask(ws.EventTaskUpdated, task)
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	h.Hub.PublishTaskDeleted(id)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
