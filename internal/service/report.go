package service

import (
	"context"
	"time"

	"workasana/internal/domain"
	"workasana/internal/repository"
)

// ReportService computes read-only aggregates over the task set. Nothing is
// persisted; every report is one fetch plus an in-memory pass.
type ReportService struct {
	tasks *repository.TaskRepository
}

func NewReportService(tasks *repository.TaskRepository) *ReportService {
	return &ReportService{tasks: tasks}
}

// PendingReport pairs outstanding effort with the completed-task count.
type PendingReport struct {
	DaysOfPendingWork   float64 `json:"daysOfPendingWork"`
	TotalCompletedTasks int     `json:"totalCompletedTasks"`
}

func (s *ReportService) LastWeekCompleted(ctx context.Context) ([]domain.PopulatedTask, error) {
	completed, err := s.tasks.List(ctx, repository.TaskFilter{Status: domain.StatusCompleted})
	if err != nil {
		return nil, err
	}
	return FilterSince(completed, time.Now().AddDate(0, 0, -7)), nil
}

func (s *ReportService) Pending(ctx context.Context) (PendingReport, error) {
	all, err := s.tasks.List(ctx, repository.TaskFilter{})
	if err != nil {
		return PendingReport{}, err
	}
	return PendingSummary(all), nil
}

func (s *ReportService) ClosedByTeam(ctx context.Context) (map[string]int, error) {
	completed, err := s.tasks.List(ctx, repository.TaskFilter{Status: domain.StatusCompleted})
	if err != nil {
		return nil, err
	}
	return CountByTeam(completed), nil
}

func (s *ReportService) ClosedByOwner(ctx context.Context) (map[string]int, error) {
	completed, err := s.tasks.List(ctx, repository.TaskFilter{Status: domain.StatusCompleted})
	if err != nil {
		return nil, err
	}
	return CountByOwner(completed), nil
}

// FilterSince keeps tasks whose updatedAt is at or after the cutoff,
// preserving store order.
func FilterSince(tasks []domain.PopulatedTask, cutoff time.Time) []domain.PopulatedTask {
	out := []domain.PopulatedTask{}
	for _, t := range tasks {
		if !t.UpdatedAt.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// PendingSummary sums timeToComplete over every task, completed included,
// and counts the completed ones. The sum deliberately spans the whole task
// set rather than only open work.
func PendingSummary(tasks []domain.PopulatedTask) PendingReport {
	var rep PendingReport
	for _, t := range tasks {
		rep.DaysOfPendingWork += t.TimeToComplete
		if t.Status == domain.StatusCompleted {
			rep.TotalCompletedTasks++
		}
	}
	return rep
}

// CountByTeam increments one counter per task, keyed by team name.
func CountByTeam(tasks []domain.PopulatedTask) map[string]int {
	counts := map[string]int{}
	for _, t := range tasks {
		counts[t.Team.Name]++
	}
	return counts
}

// CountByOwner increments one counter per owner per task: a task with three
// owners contributes to three counters.
func CountByOwner(tasks []domain.PopulatedTask) map[string]int {
	counts := map[string]int{}
	for _, t := range tasks {
		for _, o := range t.Owners {
			counts[o.Name]++
		}
	}
	return counts
}
